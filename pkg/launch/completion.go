package launch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// Completion runs a batch tool and waits for it to exit.
type Completion struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewCompletion creates a run-to-completion launcher that shares the console
// with the tool.
func NewCompletion() *Completion {
	return &Completion{Stdout: os.Stdout, Stderr: os.Stderr}
}

func (c *Completion) Produce(ctx context.Context, executable, dir string) error {
	cmd := exec.CommandContext(ctx, executable)
	cmd.Dir = dir
	cmd.Stdout = c.Stdout
	cmd.WaitDelay = waitDelay

	var stderr bytes.Buffer
	if c.Stderr != nil {
		cmd.Stderr = io.MultiWriter(&stderr, c.Stderr)
	} else {
		cmd.Stderr = &stderr
	}

	slog.Info("running tool", "executable", executable, "dir", dir)

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%w: %s: %w\nstderr: %s", ErrToolFailed, executable, err, msg)
		}
		return fmt.Errorf("%w: %s: %w", ErrToolFailed, executable, err)
	}

	slog.Info("tool finished", "executable", executable)
	return nil
}
