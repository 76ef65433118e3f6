package processing

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/systemstart/wempak/pkg/api"
	"github.com/systemstart/wempak/pkg/stages"
)

// NewContext resolves layout against workDir and returns the context a run
// starts from. A nil layout means the default one.
func NewContext(workDir, outputName string, layout *api.Layout) (*stages.Context, error) {
	if layout == nil {
		layout = api.DefaultLayout()
	}
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("invalid layout: %w", err)
	}

	resolved, err := layout.Resolve(workDir)
	if err != nil {
		return nil, err
	}

	if outputName == "" {
		outputName = api.DefaultOutputName
	}

	return &stages.Context{
		RunID:      uuid.NewString(),
		WorkDir:    resolved.WorkDir,
		OutputName: outputName,
		Layout:     resolved,
	}, nil
}
