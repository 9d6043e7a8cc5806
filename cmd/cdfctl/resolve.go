package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newResolveCmd())
}

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <file> <offset>",
		Short: "Map a byte offset to the owning field",
		Long: `The resolve command reports which known field, if any, owns the byte at
the given absolute offset. Both marker bytes and payload bytes resolve to
their field; when spans overlap the earliest-starting span wins.

Example:
  cdfctl resolve car.cdfbin 0x1a4`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(args)
		},
	}
}

func runResolve(args []string) error {
	off, err := parseOffset(args[1])
	if err != nil {
		return err
	}

	s, err := openSession(args[0])
	if err != nil {
		return err
	}

	key, ok := s.Resolve(off)
	if jsonOut {
		out := map[string]interface{}{
			"offset": off,
			"known":  ok,
		}
		if ok {
			out["section"] = key.Section
			out["name"] = key.Name
			out["occurrence"] = key.Occurrence
			out["marker"] = key.MarkerHex
		}
		return printJSON(out)
	}

	if !ok {
		printInfo("%#x: no known field\n", off)
		return nil
	}
	inst, _ := s.Find(key)
	printInfo("%#x: %s\n", off, key)
	if inst != nil {
		printInfo("  marker [%#x,%#x) payload [%#x,%#x) value %s\n",
			inst.MarkerOffset, inst.MarkerEnd(),
			inst.ValueOffset, inst.ValueEnd(), inst.FormatValues())
	}
	return nil
}
