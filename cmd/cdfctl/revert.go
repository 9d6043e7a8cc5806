package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/spf13/cobra"

	"github.com/RangeyRover/AMS2-CDF-File-Editor/internal/format"
)

var (
	revertFrom     string
	revertNoBackup bool
)

func init() {
	cmd := newRevertCmd()
	cmd.Flags().StringVar(&revertFrom, "from", "", "Reference file holding the original bytes (plain or .bak.gz)")
	cmd.Flags().BoolVar(&revertNoBackup, "no-backup", false, "Skip writing the .bak.gz backup")
	cmd.MarkFlagRequired("from")
	rootCmd.AddCommand(cmd)
}

func newRevertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "revert <file> <offset> <length>",
		Short: "Restore a byte range from a reference copy",
		Long: `The revert command copies length bytes at offset from a reference file
back into the target. The reference is usually the .bak.gz backup a mutating
command wrote; gzip-compressed references are decompressed transparently.

Example:
  cdfctl revert car.cdfbin 0x1a0 4 --from car.cdfbin.bak.gz`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRevert(args)
		},
	}
}

// readReference loads a plain or gzip-compressed reference file.
func readReference(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reference %s: %w", path, err)
	}
	if len(raw) >= 2 && raw[0] == 0x1f && raw[1] == 0x8b {
		zr, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("reference %s: %w", path, err)
		}
		defer zr.Close()
		out, err := io.ReadAll(zr)
		if err != nil {
			return nil, fmt.Errorf("reference %s: %w", path, err)
		}
		return out, nil
	}
	return raw, nil
}

func runRevert(args []string) error {
	off, err := parseOffset(args[1])
	if err != nil {
		return err
	}
	length, err := parseOffset(args[2])
	if err != nil || length == 0 {
		return fmt.Errorf("invalid length %q", args[2])
	}

	original, err := readReference(revertFrom)
	if err != nil {
		return err
	}

	s, err := openSession(args[0])
	if err != nil {
		return err
	}

	if off+length > len(original) {
		return fmt.Errorf("range [%#x,%#x) beyond reference length %#x: %w",
			off, off+length, len(original), format.ErrOutOfBounds)
	}
	if err := s.OverwriteRange(off, length, original[off:off+length]); err != nil {
		return err
	}
	if err := saveSession(s, revertNoBackup); err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":    s.Path(),
			"from":    revertFrom,
			"offset":  off,
			"length":  length,
			"success": true,
		})
	}
	printInfo("Restored %d byte(s) at %#x from %s\n", length, off, revertFrom)
	return nil
}
