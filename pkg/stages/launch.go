package stages

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/systemstart/wempak/pkg/fsutil"
	"github.com/systemstart/wempak/pkg/launch"
)

// Tool describes an external program a launch stage runs.
type Tool struct {
	Label      string // used in messages, e.g. "compress script"
	Executable string
	Dir        string
	Producer   launch.Producer

	// Artifact, if set, is the file the tool is expected to rewrite. A warning
	// is logged when it is unchanged after the tool has run.
	Artifact string
}

type launchStage struct {
	base
	tool Tool
}

// Launch runs an external tool in its working directory.
func Launch(name string, tool Tool) Stage {
	return &launchStage{base: base{name: name, policy: Fatal}, tool: tool}
}

func (s *launchStage) Check(_ *Context) error {
	if !fsutil.Exists(s.tool.Executable) {
		return fmt.Errorf("%s not found at %q: %w", s.tool.Label, s.tool.Executable, ErrExecutableNotFound)
	}
	return nil
}

func (s *launchStage) Run(ctx context.Context, _ *Context) error {
	before, hadArtifact := modTime(s.tool.Artifact)

	slog.Info("starting tool", "stage", s.name, "tool", s.tool.Label)
	if err := s.tool.Producer.Produce(ctx, s.tool.Executable, s.tool.Dir); err != nil {
		return fmt.Errorf("running %s: %w", s.tool.Label, err)
	}
	slog.Info("ran tool", "stage", s.name, "tool", s.tool.Label)

	if s.tool.Artifact == "" {
		return nil
	}
	after, ok := modTime(s.tool.Artifact)
	switch {
	case !ok:
		slog.Warn("tool did not produce its artifact", "stage", s.name, "tool", s.tool.Label, "artifact", s.tool.Artifact)
	case hadArtifact && !after.After(before):
		slog.Warn("artifact was not refreshed, it may be left over from an earlier run",
			"stage", s.name, "tool", s.tool.Label, "artifact", s.tool.Artifact, "modified", after)
	}
	return nil
}

func modTime(path string) (time.Time, bool) {
	if path == "" {
		return time.Time{}, false
	}
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}
