package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	repairDryRun   bool
	repairNoBackup bool
)

func init() {
	cmd := newRepairCmd()
	cmd.Flags().BoolVarP(&repairDryRun, "dry-run", "d", false,
		"Preview the fix without applying it")
	cmd.Flags().BoolVar(&repairNoBackup, "no-backup", false,
		"Skip writing the .bak.gz backup")
	rootCmd.AddCommand(cmd)
}

func newRepairCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repair <file>",
		Short: "Apply the suggested register fix",
		Long: `The repair command validates the byte-count registers and, when a
conservative fix can be derived, writes it into the header. Exactly the four
register fields change; the file length never does.

The command refuses when the registers are already consistent and when no
fix can be derived.

Example:
  cdfctl repair --dry-run car.cdfbin
  cdfctl repair car.cdfbin`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepair(args)
		},
	}
}

func runRepair(args []string) error {
	s, err := openSession(args[0])
	if err != nil {
		return err
	}
	chk, err := s.CheckRegisters()
	if err != nil {
		return err
	}

	if chk.OK {
		printInfo("✓ Registers already consistent, nothing to repair.\n")
		return nil
	}
	if chk.Suggested == nil {
		if !jsonOut {
			printRegisterCheck(chk, s.Len())
		}
		return fmt.Errorf("no automatic repair can be derived")
	}

	if !jsonOut {
		printRegisterCheck(chk, s.Len())
	}
	if repairDryRun {
		printInfo("Dry-run: no changes made.\n")
		return nil
	}

	if err := s.ApplyRegisterFix(chk.Suggested); err != nil {
		return err
	}
	if err := saveSession(s, repairNoBackup); err != nil {
		return err
	}

	after, err := s.CheckRegisters()
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":    s.Path(),
			"applied": chk.Suggested,
			"ok":      after.OK,
		})
	}
	if after.OK {
		printInfo("✓ Repair applied, registers now consistent.\n")
	} else {
		printInfo("Repair applied, but %d problem(s) remain.\n", len(after.Problems))
	}
	return nil
}
