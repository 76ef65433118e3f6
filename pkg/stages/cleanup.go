package stages

import (
	"context"
	"log/slog"

	"github.com/systemstart/wempak/pkg/fsutil"
)

// CleanupResult contains the outcome of removing intermediate artifacts.
type CleanupResult struct {
	Removed []string
	Errors  []CleanupError
}

// CleanupError pairs a path with the error removing it.
type CleanupError struct {
	Path  string
	Error error
}

type cleanupStage struct {
	base
	targets []string
}

// Cleanup removes the intermediate copies left in the tool folders. Each
// removal is attempted regardless of the others, and none of them can fail
// the run.
func Cleanup(name string, targets ...string) Stage {
	return &cleanupStage{base: base{name: name, policy: Warn}, targets: targets}
}

func (s *cleanupStage) Announce() string { return "cleaning up" }

func (s *cleanupStage) Check(_ *Context) error { return nil }

func (s *cleanupStage) Run(_ context.Context, _ *Context) error {
	result := RemoveTargets(s.targets)
	slog.Info("cleanup finished", "stage", s.name, "removed", len(result.Removed), "failed", len(result.Errors))
	return nil
}

// RemoveTargets removes each path independently and logs every outcome.
func RemoveTargets(targets []string) CleanupResult {
	var result CleanupResult
	for _, p := range targets {
		if err := fsutil.Remove(p); err != nil {
			slog.Error("failed to remove intermediate artifact", "path", p, "error", err)
			result.Errors = append(result.Errors, CleanupError{Path: p, Error: err})
			continue
		}
		slog.Info("removed intermediate artifact", "path", p)
		result.Removed = append(result.Removed, p)
	}
	return result
}
