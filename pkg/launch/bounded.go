package launch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"time"
)

// Bounded runs an interactive tool for a fixed grace period and then kills it,
// whatever state it is in. The tool is expected to have written its artifact
// by then; nothing confirms that it has.
type Bounded struct {
	Grace  time.Duration
	Stdout io.Writer
	Stderr io.Writer
}

// NewBounded creates a bounded launcher that shares the console with the tool.
func NewBounded(grace time.Duration) *Bounded {
	return &Bounded{Grace: grace, Stdout: os.Stdout, Stderr: os.Stderr}
}

func (b *Bounded) Produce(ctx context.Context, executable, dir string) error {
	cmd := exec.Command(executable)
	cmd.Dir = dir
	cmd.Stdout = b.Stdout
	cmd.Stderr = b.Stderr
	cmd.WaitDelay = waitDelay

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", executable, err)
	}

	slog.Info("started tool", "executable", executable, "dir", dir, "pid", cmd.Process.Pid, "grace", b.Grace)

	timer := time.NewTimer(b.Grace)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
		slog.Warn("grace period interrupted", "executable", executable, "error", ctx.Err())
	}

	terminate(cmd)
	return ctx.Err()
}

// terminate kills cmd and reaps it. Failures are logged, never returned.
func terminate(cmd *exec.Cmd) {
	err := cmd.Process.Kill()
	switch {
	case err == nil:
	case errors.Is(err, os.ErrProcessDone):
		slog.Warn("tool exited before the grace period elapsed", "pid", cmd.Process.Pid)
	default:
		slog.Warn("failed to terminate tool", "pid", cmd.Process.Pid, "error", err)
		_ = cmd.Process.Release()
		return
	}

	if err := cmd.Wait(); err != nil {
		slog.Debug("tool terminated", "pid", cmd.Process.Pid, "status", err)
		return
	}
	slog.Debug("tool terminated", "pid", cmd.Process.Pid)
}
