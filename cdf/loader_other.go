//go:build !linux && !darwin

package cdf

import (
	"errors"
	"fmt"
	"os"
)

// ErrEmptyFile indicates a zero-length file, which cannot carry the fixed
// header and is rejected before parsing.
var ErrEmptyFile = errors.New("cdf: empty file")

func readFile(path string) ([]byte, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cdf: read %s: %w", path, err)
	}
	if len(blob) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyFile)
	}
	return blob, nil
}
