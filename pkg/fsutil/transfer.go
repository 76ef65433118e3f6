package fsutil

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

var (
	ErrDestinationNotFound = errors.New("destination not found")
	ErrSourceNotFound      = errors.New("source not found")
	ErrInvalidSourceName   = errors.New("could not extract file name")
	ErrCopyFailed          = errors.New("copy failed")
)

// CopyInto copies src to destDir/base(src), replacing any file already there,
// and returns the destination path. The destination directory is checked
// before the source.
func CopyInto(src, destDir string) (string, error) {
	if !Exists(destDir) {
		return "", fmt.Errorf("%w: %s", ErrDestinationNotFound, destDir)
	}
	if !Exists(src) {
		return "", fmt.Errorf("%w: %s", ErrSourceNotFound, src)
	}

	base := filepath.Base(src)
	if base == "." || base == ".." || base == string(filepath.Separator) {
		return "", fmt.Errorf("%w: %s", ErrInvalidSourceName, src)
	}
	dst := filepath.Join(destDir, base)

	if err := copyFile(src, dst); err != nil {
		return "", fmt.Errorf("%w: %s to %s: %w", ErrCopyFailed, src, dst, err)
	}

	slog.Info("copied file", "from", src, "to", dst)
	return dst, nil
}

func copyFile(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}
	if !srcInfo.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", src)
	}

	// Truncating dst would wipe src when both name the same file.
	if dstInfo, err := os.Stat(dst); err == nil && os.SameFile(srcInfo, dstInfo) {
		slog.Debug("source and destination are the same file", "path", dst)
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, srcInfo.Mode().Perm())
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}

// Rename moves src to dst. There is no copy-and-delete fallback when the
// rename crosses devices.
func Rename(src, dst string) error {
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("renaming %s to %s: %w", src, dst, err)
	}
	return nil
}

// Remove deletes a single file.
func Remove(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("removing %s: %w", path, err)
	}
	return nil
}
