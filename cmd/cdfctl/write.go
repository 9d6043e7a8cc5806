package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var writeNoBackup bool

func init() {
	cmd := newWriteCmd()
	cmd.Flags().BoolVar(&writeNoBackup, "no-backup", false, "Skip writing the .bak.gz backup")
	rootCmd.AddCommand(cmd)
}

func newWriteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "write <file> <offset> <hexbytes>",
		Short: "Overwrite a raw byte range",
		Long: `The write command overwrites bytes at an absolute offset, including bytes
no definition covers. The range length is the length of the hex string, and
the file size never changes.

Example:
  cdfctl write car.cdfbin 0x1a0 0a282c3f
  cdfctl write car.cdfbin 416 "0a 28 2c 3f"`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWrite(args)
		},
	}
}

func runWrite(args []string) error {
	off, err := parseOffset(args[1])
	if err != nil {
		return err
	}
	cleaned := strings.NewReplacer(" ", "", "\t", "", ",", "").Replace(args[2])
	newBytes, err := hex.DecodeString(cleaned)
	if err != nil {
		return fmt.Errorf("invalid hex bytes %q: %w", args[2], err)
	}
	if len(newBytes) == 0 {
		return fmt.Errorf("no bytes to write")
	}

	s, err := openSession(args[0])
	if err != nil {
		return err
	}
	if err := s.OverwriteRange(off, len(newBytes), newBytes); err != nil {
		return err
	}
	if err := saveSession(s, writeNoBackup); err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":    s.Path(),
			"offset":  off,
			"length":  len(newBytes),
			"success": true,
		})
	}
	printInfo("Wrote %d byte(s) at %#x\n", len(newBytes), off)
	return nil
}
