package main

import (
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
)

// backupFile writes a gzip-compressed copy of path next to it and returns the
// backup path. An existing backup is overwritten; the latest pre-edit state
// is the one worth keeping.
func backupFile(path string) (string, error) {
	src, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("backup: open %s: %w", path, err)
	}
	defer src.Close()

	backupPath := path + ".bak.gz"
	dst, err := os.Create(backupPath)
	if err != nil {
		return "", fmt.Errorf("backup: create %s: %w", backupPath, err)
	}

	zw := gzip.NewWriter(dst)
	zw.Name = path
	if _, err := io.Copy(zw, src); err != nil {
		zw.Close()
		dst.Close()
		os.Remove(backupPath)
		return "", fmt.Errorf("backup: write %s: %w", backupPath, err)
	}
	if err := zw.Close(); err != nil {
		dst.Close()
		os.Remove(backupPath)
		return "", fmt.Errorf("backup: finish %s: %w", backupPath, err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(backupPath)
		return "", fmt.Errorf("backup: close %s: %w", backupPath, err)
	}

	logger.Debug("wrote backup", "path", backupPath)
	return backupPath, nil
}
