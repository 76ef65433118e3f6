package api

import (
	"strings"
	"testing"
)

func TestValidate_DefaultLayout(t *testing.T) {
	if err := DefaultLayout().Validate(); err != nil {
		t.Fatalf("expected default layout to be valid, got error: %v", err)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(l *Layout)
		wantErr string
	}{
		{"empty extension", func(l *Layout) { l.AssetExtension = "" }, "assetExtension is required"},
		{"extension without dot", func(l *Layout) { l.AssetExtension = "wem" }, "must start with a dot"},
		{"bare dot", func(l *Layout) { l.AssetExtension = "." }, "must start with a dot"},
		{"glob in extension", func(l *Layout) { l.AssetExtension = ".w*m" }, "reserved characters"},
		{"brace in extension", func(l *Layout) { l.AssetExtension = ".{wem,bnk}" }, "reserved characters"},
		{"empty canonical name", func(l *Layout) { l.CanonicalName = "" }, "canonicalName is required"},
		{"canonical name with dir", func(l *Layout) { l.CanonicalName = "sub/LunaUlt.wem" }, "bare file name"},
		{"zero grace", func(l *Layout) { l.Editor.Grace = 0 }, "editor.grace must be positive"},
		{"negative grace", func(l *Layout) { l.Editor.Grace = -1 }, "editor.grace must be positive"},
		{"missing editor root", func(l *Layout) { l.Editor.Root = "" }, "editor.root is required"},
		{"missing executable", func(l *Layout) { l.Editor.Executable = " " }, "editor.executable is required"},
		{"missing artifact", func(l *Layout) { l.Editor.Artifact = "" }, "editor.artifact is required"},
		{"missing script", func(l *Layout) { l.Archiver.Script = "" }, "archiver.script is required"},
		{"missing archive", func(l *Layout) { l.Archiver.Archive = "" }, "archiver.archive is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := DefaultLayout()
			tt.mutate(l)
			err := l.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got: %v", tt.wantErr, err)
			}
		})
	}
}
