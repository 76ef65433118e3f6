package processing

import (
	"path/filepath"

	"github.com/systemstart/wempak/pkg/api"
	"github.com/systemstart/wempak/pkg/launch"
	"github.com/systemstart/wempak/pkg/stages"
)

// Tools are the external programs a run drives.
type Tools struct {
	Editor     launch.Producer
	Compressor launch.Producer
}

// DefaultTools launches the real editor and compressor.
func DefaultTools(layout *api.Layout) Tools {
	return Tools{
		Editor:     launch.NewBounded(layout.Editor.Grace),
		Compressor: launch.NewCompletion(),
	}
}

// Plan returns the conversion stages in the order they must run. Each stage
// depends on the files the one before it leaves behind.
func Plan(pc *stages.Context, tools Tools) []stages.Stage {
	l := pc.Layout
	canonical := l.CanonicalPath()
	artifactName := filepath.Base(l.Editor.Artifact)

	return []stages.Stage{
		stages.Locate("locate input"),
		stages.Require("validate soundmod root", "soundmod folder", l.Editor.Root),
		stages.Canonicalize("canonicalize input name"),
		stages.Copy("stage input for editor", canonical, l.Editor.InputDir),
		stages.Launch("run editor", stages.Tool{
			Label:      filepath.Base(l.Editor.Executable),
			Executable: l.Editor.Executable,
			Dir:        l.Editor.Root,
			Artifact:   l.Editor.Artifact,
			Producer:   tools.Editor,
		}),
		stages.Require("validate archive root", "u4pakc folder", l.Archiver.Root),
		stages.Copy("stage editor artifact", l.Editor.Artifact, l.Archiver.AudioDir),
		stages.Launch("run compressor", stages.Tool{
			Label:      "compress script",
			Executable: l.Archiver.Script,
			Dir:        l.Archiver.Root,
			Producer:   tools.Compressor,
		}),
		stages.VerifyArtifact("verify final artifact", "archive", l.Archiver.Archive),
		stages.Finalize("finalize output name", l.Archiver.Archive),
		stages.Cleanup("cleanup",
			filepath.Join(l.Editor.InputDir, l.CanonicalName),
			l.Editor.Artifact,
			filepath.Join(l.Archiver.AudioDir, artifactName),
		),
	}
}
