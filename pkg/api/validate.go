package api

import (
	"fmt"
	"strings"
)

// globMeta are the characters doublestar treats specially in a pattern.
const globMeta = `*?[]{}\`

// Validate checks the layout configuration for errors.
func (l *Layout) Validate() error {
	if err := validateExtension(l.AssetExtension); err != nil {
		return err
	}

	if l.CanonicalName == "" {
		return fmt.Errorf("canonicalName is required")
	}
	if strings.ContainsAny(l.CanonicalName, `/\`) {
		return fmt.Errorf("canonicalName %q must be a bare file name", l.CanonicalName)
	}

	if l.Editor.Grace <= 0 {
		return fmt.Errorf("editor.grace must be positive, got %s", l.Editor.Grace)
	}

	required := []struct {
		key   string
		value string
	}{
		{"editor.root", l.Editor.Root},
		{"editor.executable", l.Editor.Executable},
		{"editor.inputDir", l.Editor.InputDir},
		{"editor.artifact", l.Editor.Artifact},
		{"archiver.root", l.Archiver.Root},
		{"archiver.script", l.Archiver.Script},
		{"archiver.audioDir", l.Archiver.AudioDir},
		{"archiver.archive", l.Archiver.Archive},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%s is required", r.key)
		}
	}

	return nil
}

func validateExtension(ext string) error {
	if ext == "" {
		return fmt.Errorf("assetExtension is required")
	}
	if !strings.HasPrefix(ext, ".") || len(ext) == 1 {
		return fmt.Errorf("assetExtension %q must start with a dot", ext)
	}
	if strings.ContainsAny(ext, globMeta+"/") {
		return fmt.Errorf("assetExtension %q contains reserved characters", ext)
	}
	return nil
}
