package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/RangeyRover/AMS2-CDF-File-Editor/cdf"
	"github.com/RangeyRover/AMS2-CDF-File-Editor/cdf/printer"
)

var fieldsSection string

func init() {
	cmd := newFieldsCmd()
	cmd.Flags().StringVar(&fieldsSection, "section", "", "Only list fields in this section")
	rootCmd.AddCommand(cmd)
}

func newFieldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fields <file>",
		Short: "Parse a file and list every recognized field instance",
		Long: `The fields command scans the file for every known marker and prints the
decoded instances grouped by section.

Example:
  cdfctl fields car.cdfbin
  cdfctl fields car.cdfbin --section SUSPENSION
  cdfctl fields car.cdfbin --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFields(args)
		},
	}
}

func runFields(args []string) error {
	s, err := openSession(args[0])
	if err != nil {
		return err
	}

	instances := s.Instances()
	if fieldsSection != "" {
		var filtered []*cdf.FieldInstance
		for _, inst := range instances {
			if inst.Def.Section == fieldsSection {
				filtered = append(filtered, inst)
			}
		}
		instances = filtered
	}

	if jsonOut {
		out := make([]instanceJSON, len(instances))
		for i, inst := range instances {
			out[i] = instanceToJSON(inst)
		}
		return printJSON(out)
	}

	if len(instances) == 0 {
		printInfo("No recognized fields.\n")
		return nil
	}
	return printer.FieldTable(os.Stdout, instances)
}
