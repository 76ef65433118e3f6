package stages

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/systemstart/wempak/pkg/api"
)

// newTestContext returns a context rooted at a fresh temporary working
// directory with the default layout resolved against it.
func newTestContext(t *testing.T) *Context {
	t.Helper()
	dir := t.TempDir()
	layout, err := api.DefaultLayout().Resolve(dir)
	if err != nil {
		t.Fatal(err)
	}
	return &Context{
		WorkDir:    dir,
		OutputName: api.DefaultOutputName,
		Layout:     layout,
	}
}

// writeTestFile writes content to path, creating parent directories.
func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func mkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o750); err != nil {
		t.Fatal(err)
	}
}

func readTestFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}
