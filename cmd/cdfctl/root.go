package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/RangeyRover/AMS2-CDF-File-Editor/cdf/defs"
)

var (
	// Global flags
	verbose  bool
	quiet    bool
	jsonOut  bool
	defsPath string
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

var rootCmd = &cobra.Command{
	Use:   "cdfctl",
	Short: "Inspect and edit CDFbin vehicle setup files",
	Long: `cdfctl is a tool for inspecting, validating, and editing the binary
CDFbin vehicle setup files used by the simulator. It decodes known fields by
marker, checks and repairs the header byte-count registers, and applies
strictly size-preserving in-place edits.`,
	Version: "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVar(&defsPath, "defs", "", "Load field definitions from a YAML file instead of the built-in table")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadTable returns the definition table selected by --defs.
func loadTable() (*defs.Table, error) {
	if defsPath == "" {
		return defs.Builtin(), nil
	}
	logger.Debug("loading definition table", "path", defsPath)
	return defs.LoadFile(defsPath)
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
