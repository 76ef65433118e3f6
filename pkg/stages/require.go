package stages

import (
	"context"
	"fmt"

	"github.com/systemstart/wempak/pkg/fsutil"
)

type requireStage struct {
	base
	what        string
	path        string
	unreachable bool
}

// Require fails when path does not exist. It has no effect of its own.
func Require(name, what, path string) Stage {
	return &requireStage{base: base{name: name, policy: Fatal}, what: what, path: path}
}

// VerifyArtifact fails when an artifact a previous stage guaranteed is
// missing. The error marks the situation as one that should not happen.
func VerifyArtifact(name, what, path string) Stage {
	return &requireStage{base: base{name: name, policy: Fatal}, what: what, path: path, unreachable: true}
}

func (s *requireStage) Check(_ *Context) error {
	if fsutil.Exists(s.path) {
		return nil
	}
	if s.unreachable {
		return fmt.Errorf("%s %q not found: %w; the tool that produces it reported success, so it has been removed or renamed since",
			s.what, s.path, ErrUnexpectedState)
	}
	return fmt.Errorf("%s %q: %w", s.what, s.path, ErrNotFound)
}

func (s *requireStage) Run(_ context.Context, _ *Context) error {
	return nil
}
