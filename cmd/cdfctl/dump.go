package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/RangeyRover/AMS2-CDF-File-Editor/cdf/printer"
)

var (
	dumpStart      string
	dumpLength     int
	dumpNoAnnotate bool
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().StringVar(&dumpStart, "start", "0", "First offset to dump (decimal or 0x hex)")
	cmd.Flags().IntVar(&dumpLength, "length", 0, "Number of bytes to dump (0 = to end)")
	cmd.Flags().BoolVar(&dumpNoAnnotate, "no-annotate", false, "Suppress known-field annotations")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file>",
		Short: "Hex dump with known-field annotation",
		Long: `The dump command prints an offset/hex/ASCII dump of the file. Rows that
enter a known marker or payload span are annotated with the owning field key.

Example:
  cdfctl dump car.cdfbin
  cdfctl dump car.cdfbin --start 0x1a0 --length 64`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
}

func runDump(args []string) error {
	start, err := parseOffset(dumpStart)
	if err != nil {
		return err
	}

	s, err := openSession(args[0])
	if err != nil {
		return err
	}

	opts := printer.DefaultOptions()
	opts.Start = start
	opts.Length = dumpLength
	if !dumpNoAnnotate {
		opts.Annotate = func(off int) (string, bool) {
			key, ok := s.Resolve(off)
			if !ok {
				return "", false
			}
			return key.String(), true
		}
	}
	return printer.Dump(os.Stdout, s.Working(), opts)
}
