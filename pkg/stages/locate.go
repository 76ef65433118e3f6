package stages

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/systemstart/wempak/pkg/fsutil"
)

type locateStage struct {
	base
}

// Locate finds the input asset directly under the working directory. When
// several match, the first in lexical order is used.
func Locate(name string) Stage {
	return &locateStage{base: base{name: name, policy: Fatal}}
}

func (s *locateStage) Check(pc *Context) error {
	if len(fsutil.FindAssets(pc.WorkDir, pc.Layout.AssetExtension)) == 0 {
		return fmt.Errorf("%w: no %s file in %s", ErrNoAsset, pc.Layout.AssetExtension, pc.WorkDir)
	}
	return nil
}

func (s *locateStage) Run(_ context.Context, pc *Context) error {
	assets := fsutil.FindAssets(pc.WorkDir, pc.Layout.AssetExtension)
	if len(assets) == 0 {
		return fmt.Errorf("%w: no %s file in %s", ErrNoAsset, pc.Layout.AssetExtension, pc.WorkDir)
	}
	if len(assets) > 1 {
		slog.Warn("several assets found, using the first", "stage", s.name, "count", len(assets), "using", assets[0])
	}

	pc.Input = assets[0]
	slog.Info("found asset", "stage", s.name, "path", pc.Input)
	return nil
}
