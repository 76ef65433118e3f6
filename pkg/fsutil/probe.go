package fsutil

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
)

// Exists reports whether path names an existing file or directory.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// FindAssets lists the regular files directly under dir whose name ends in
// ext, in lexical order. A directory that cannot be read has no assets.
func FindAssets(dir, ext string) []string {
	fsys := os.DirFS(dir)

	matches, err := doublestar.Glob(fsys, "*"+ext)
	if err != nil {
		slog.Debug("asset glob failed", "dir", dir, "ext", ext, "error", err)
		return nil
	}
	slices.Sort(matches)

	result := make([]string, 0, len(matches))
	for _, m := range matches {
		info, err := fs.Stat(fsys, m)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		result = append(result, filepath.Join(dir, filepath.FromSlash(m)))
	}
	return result
}

// FindAsset returns the first asset FindAssets would list.
func FindAsset(dir, ext string) (string, bool) {
	assets := FindAssets(dir, ext)
	if len(assets) == 0 {
		return "", false
	}
	return assets[0], true
}
