package fsutil

import (
	"os"
	"path/filepath"
	"testing"
)

// writeTestFile writes content to a file in dir, failing the test on error.
func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	f := writeTestFile(t, dir, "a.txt", "x")

	if !Exists(dir) {
		t.Error("directory should exist")
	}
	if !Exists(f) {
		t.Error("file should exist")
	}
	if Exists(filepath.Join(dir, "missing")) {
		t.Error("missing path should not exist")
	}
}

func TestFindAsset(t *testing.T) {
	tests := []struct {
		name   string
		files  []string
		want   string
		wantOK bool
	}{
		{"none", []string{"readme.txt", "song.bnk"}, "", false},
		{"one", []string{"readme.txt", "song.wem"}, "song.wem", true},
		{"two picks first lexically", []string{"b_song.wem", "a_song.wem"}, "a_song.wem", true},
		{"extension is case sensitive", []string{"song.WEM"}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for _, f := range tt.files {
				writeTestFile(t, dir, f, "data")
			}

			got, ok := FindAsset(dir, ".wem")
			if ok != tt.wantOK {
				t.Fatalf("FindAsset ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != filepath.Join(dir, tt.want) {
				t.Errorf("FindAsset = %q, want %q", got, filepath.Join(dir, tt.want))
			}
		})
	}
}

func TestFindAssets_SkipsDirectoriesAndSubdirs(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "folder.wem"), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0o750); err != nil {
		t.Fatal(err)
	}
	writeTestFile(t, filepath.Join(dir, "sub"), "nested.wem", "data")
	writeTestFile(t, dir, "top.wem", "data")

	got := FindAssets(dir, ".wem")
	if len(got) != 1 {
		t.Fatalf("expected 1 asset, got %d: %v", len(got), got)
	}
	if got[0] != filepath.Join(dir, "top.wem") {
		t.Errorf("unexpected asset %q", got[0])
	}
}

func TestFindAssets_UnreadableDirectory(t *testing.T) {
	got := FindAssets(filepath.Join(t.TempDir(), "missing"), ".wem")
	if len(got) != 0 {
		t.Fatalf("expected no assets, got %v", got)
	}
}
