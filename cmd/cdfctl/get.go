package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newGetCmd())
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <file> <section> <name> [occurrence]",
		Short: "Print one field instance",
		Long: `The get command prints a single field instance. The occurrence index
selects between repeated instances of the same field; it defaults to 0.

Example:
  cdfctl get car.cdfbin GENERAL "Fuel load"
  cdfctl get car.cdfbin SUSPENSION "Front ride height" 1`,
		Args: cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
}

func runGet(args []string) error {
	occurrence := 0
	if len(args) == 4 {
		n, err := strconv.Atoi(args[3])
		if err != nil || n < 0 {
			return fmt.Errorf("invalid occurrence %q", args[3])
		}
		occurrence = n
	}

	s, err := openSession(args[0])
	if err != nil {
		return err
	}

	inst, err := s.Lookup(args[1], args[2], occurrence)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(instanceToJSON(inst))
	}
	printInfo("%s = %s\n", inst.Key(), inst.FormatValues())
	printInfo("  marker %s at %#x, payload %s at %#x\n",
		inst.Def.MarkerHex(), inst.MarkerOffset, inst.Def.Layout.String(), inst.ValueOffset)
	if inst.Def.Notes != "" {
		printInfo("  notes: %s\n", inst.Def.Notes)
	}
	return nil
}
