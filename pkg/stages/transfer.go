package stages

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/systemstart/wempak/pkg/fsutil"
)

type canonicalizeStage struct {
	base
}

// Canonicalize renames the located asset to the layout's canonical name so
// later stages can refer to it by a fixed path.
func Canonicalize(name string) Stage {
	return &canonicalizeStage{base: base{name: name, policy: Fatal}}
}

func (s *canonicalizeStage) Check(pc *Context) error {
	if pc.Input == "" {
		return fmt.Errorf("input asset: %w", ErrNoAsset)
	}
	if !fsutil.Exists(pc.Input) {
		return fmt.Errorf("input asset %q: %w", pc.Input, ErrNotFound)
	}
	return nil
}

func (s *canonicalizeStage) Run(_ context.Context, pc *Context) error {
	dst := pc.Layout.CanonicalPath()
	if err := fsutil.Rename(pc.Input, dst); err != nil {
		return err
	}

	slog.Info("renamed input", "stage", s.name, "from", pc.Input, "to", dst)
	pc.Input = dst
	return nil
}

type copyStage struct {
	base
	src     string
	destDir string
}

// Copy places a copy of src in destDir, where a tool expects to find it.
func Copy(name, src, destDir string) Stage {
	return &copyStage{base: base{name: name, policy: Fatal}, src: src, destDir: destDir}
}

func (s *copyStage) Check(_ *Context) error {
	if !fsutil.Exists(s.destDir) {
		return fmt.Errorf("%w: %s", fsutil.ErrDestinationNotFound, s.destDir)
	}
	if !fsutil.Exists(s.src) {
		return fmt.Errorf("%w: %s", fsutil.ErrSourceNotFound, s.src)
	}
	return nil
}

func (s *copyStage) Run(_ context.Context, _ *Context) error {
	_, err := fsutil.CopyInto(s.src, s.destDir)
	return err
}

type finalizeStage struct {
	base
	src string
}

// Finalize moves the finished archive to the requested output name in the
// working directory. Failing to do so does not fail the run.
func Finalize(name, src string) Stage {
	return &finalizeStage{base: base{name: name, policy: Warn}, src: src}
}

func (s *finalizeStage) Check(_ *Context) error {
	if !fsutil.Exists(s.src) {
		return fmt.Errorf("archive %q: %w", s.src, ErrNotFound)
	}
	return nil
}

func (s *finalizeStage) Run(_ context.Context, pc *Context) error {
	dst := pc.Layout.OutputPath(pc.OutputName)
	if err := fsutil.Rename(s.src, dst); err != nil {
		return err
	}

	slog.Info("renamed archive", "stage", s.name, "from", s.src, "to", dst)
	return nil
}
