//go:build linux || darwin

package cdf

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// ErrEmptyFile indicates a zero-length file, which cannot carry the fixed
// header and is rejected before parsing.
var ErrEmptyFile = errors.New("cdf: empty file")

// readFile maps the file read-only and copies it into a private buffer. Setup
// files are small, but mapping keeps the read path identical for the large
// synthetic blobs used in soak testing. The mapping is released before
// returning; the session only ever works on its own copy.
func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cdf: open %s: %w", path, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("cdf: stat %s: %w", path, err)
	}
	size := fi.Size()
	if size == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyFile)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("cdf: mmap %s: %w", path, err)
	}
	defer unix.Munmap(data)

	blob := make([]byte, len(data))
	copy(blob, data)
	return blob, nil
}
