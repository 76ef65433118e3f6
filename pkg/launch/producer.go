// Package launch starts the external tools the pipeline drives. The tools
// take no input on stdin and report nothing on stdout that the pipeline reads;
// their only contract is the files they leave behind.
package launch

import (
	"context"
	"errors"
	"time"
)

// ErrToolFailed is returned when a run-to-completion tool exits unsuccessfully.
var ErrToolFailed = errors.New("tool failed")

// waitDelay bounds how long reaping a child may block on its I/O after it exits.
const waitDelay = time.Second

// Producer runs an external tool that produces artifacts on disk.
type Producer interface {
	Produce(ctx context.Context, executable, dir string) error
}

// ProducerFunc adapts a function to the Producer interface.
type ProducerFunc func(ctx context.Context, executable, dir string) error

func (f ProducerFunc) Produce(ctx context.Context, executable, dir string) error {
	return f(ctx, executable, dir)
}
