package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RangeyRover/AMS2-CDF-File-Editor/internal/format"
)

var (
	setOccurrence int
	setNoBackup   bool
)

func init() {
	cmd := newSetCmd()
	cmd.Flags().IntVarP(&setOccurrence, "occurrence", "n", 0, "Occurrence index of the field")
	cmd.Flags().BoolVar(&setNoBackup, "no-backup", false, "Skip writing the .bak.gz backup")
	rootCmd.AddCommand(cmd)
}

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <file> <section> <name> <value>...",
		Short: "Edit a field in place",
		Long: `The set command encodes the given values against the field's layout and
overwrites the payload bytes. One value per layout slot; integers accept
0x-prefixed hex. The encoded bytes must be exactly the size of the existing
payload, so edits never move other bytes.

Example:
  cdfctl set car.cdfbin GENERAL "Fuel load" 43.5
  cdfctl set car.cdfbin DRIVELINE "Final drive" 0x0c -n 1`,
		Args: cobra.MinimumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args)
		},
	}
}

func runSet(args []string) error {
	s, err := openSession(args[0])
	if err != nil {
		return err
	}

	inst, err := s.Lookup(args[1], args[2], setOccurrence)
	if err != nil {
		return err
	}

	layout := inst.Def.Layout
	valueArgs := args[3:]
	if len(valueArgs) != len(layout) {
		return fmt.Errorf("%s expects %d value(s) (%s), got %d",
			inst.Key(), len(layout), layout.String(), len(valueArgs))
	}

	values := make([]format.Value, len(layout))
	for i, arg := range valueArgs {
		v, err := format.ParseValue(layout[i], arg)
		if err != nil {
			return fmt.Errorf("value %d: %w", i+1, err)
		}
		values[i] = v
	}

	before := inst.FormatValues()
	key := inst.Key()
	if err := s.EditField(key, values); err != nil {
		return err
	}
	if err := saveSession(s, setNoBackup); err != nil {
		return err
	}

	after, _ := s.Find(key)
	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":    s.Path(),
			"field":   key.String(),
			"before":  before,
			"after":   after.FormatValues(),
			"success": true,
		})
	}
	printInfo("%s: %s -> %s\n", key, before, after.FormatValues())
	return nil
}
