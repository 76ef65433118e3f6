package api

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadLayout reads a .wempak.yaml file over the default layout and validates
// the result. Keys missing from the file keep their default values.
func LoadLayout(filename string) (*Layout, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading layout file: %w", err)
	}

	l := DefaultLayout()
	if err := yaml.Unmarshal(data, l); err != nil {
		return nil, fmt.Errorf("parsing layout file: %w", err)
	}

	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("validating layout %s: %w", filename, err)
	}

	return l, nil
}

// Resolve returns a copy of l with every path made absolute against workDir.
func (l *Layout) Resolve(workDir string) (*Layout, error) {
	absWorkDir, err := filepath.Abs(workDir)
	if err != nil {
		return nil, fmt.Errorf("resolving working directory: %w", err)
	}

	abs := func(p string) string {
		p = filepath.FromSlash(p)
		if filepath.IsAbs(p) {
			return filepath.Clean(p)
		}
		return filepath.Join(absWorkDir, p)
	}

	r := *l
	r.WorkDir = absWorkDir
	r.Editor.Root = abs(l.Editor.Root)
	r.Editor.Executable = abs(l.Editor.Executable)
	r.Editor.InputDir = abs(l.Editor.InputDir)
	r.Editor.Artifact = abs(l.Editor.Artifact)
	r.Archiver.Root = abs(l.Archiver.Root)
	r.Archiver.Script = abs(l.Archiver.Script)
	r.Archiver.AudioDir = abs(l.Archiver.AudioDir)
	r.Archiver.Archive = abs(l.Archiver.Archive)
	return &r, nil
}

// CanonicalPath is where the input asset lives after it has been renamed.
func (l *Layout) CanonicalPath() string {
	return filepath.Join(l.WorkDir, l.CanonicalName)
}

// OutputPath is where the finished archive is moved to.
func (l *Layout) OutputPath(outputName string) string {
	if filepath.IsAbs(outputName) {
		return outputName
	}
	return filepath.Join(l.WorkDir, outputName)
}

// OutputName picks the archive name from the positional arguments. Only the
// first argument is consulted.
func OutputName(args []string) string {
	if len(args) == 0 || args[0] == "" {
		slog.Info("no output file name provided, using default",
			"output", DefaultOutputName,
			"usage", fmt.Sprintf("wempak Custom%s", filepath.Ext(DefaultOutputName)))
		return DefaultOutputName
	}
	if len(args) > 1 {
		slog.Debug("ignoring extra arguments", "extra", args[1:])
	}
	return args[0]
}
