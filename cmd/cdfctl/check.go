package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RangeyRover/AMS2-CDF-File-Editor/cdf"
)

func init() {
	rootCmd.AddCommand(newCheckCmd())
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Validate the header byte-count registers",
		Long: `The check command reads the four byte-count registers from the fixed
header and validates them against the actual file length. Every violated
relationship is reported; when a conservative repair can be derived it is
shown but not applied.

Exit status is non-zero when the registers are inconsistent.

Example:
  cdfctl check car.cdfbin
  cdfctl check car.cdfbin --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args)
		},
	}
}

func runCheck(args []string) error {
	s, err := openSession(args[0])
	if err != nil {
		return err
	}
	chk, err := s.CheckRegisters()
	if err != nil {
		return err
	}

	if jsonOut {
		if err := printJSON(chk); err != nil {
			return err
		}
	} else {
		printRegisterCheck(chk, s.Len())
	}

	if !chk.OK {
		return fmt.Errorf("registers inconsistent (%d problem(s))", len(chk.Problems))
	}
	return nil
}

func printRegisterCheck(chk *cdf.RegisterCheck, fileLen int) {
	printInfo("File length: %d bytes\n", fileLen)
	printInfo("Registers:\n")
	printInfo("  R0 file length   %10d\n", chk.Regs.FileLen)
	printInfo("  R1 middle length %10d\n", chk.Regs.MidLen)
	printInfo("  R2 end length    %10d\n", chk.Regs.EndLen)
	printInfo("  R3 end start     %10d\n", chk.Regs.EndStart)

	if chk.OK {
		printInfo("✓ Registers consistent.\n")
		return
	}
	printInfo("Problems:\n")
	for _, p := range chk.Problems {
		printInfo("  - %s\n", p)
	}
	if chk.Suggested != nil {
		printInfo("Suggested fix:\n")
		printInfo("  R0=%d R1=%d R2=%d R3=%d\n",
			chk.Suggested.FileLen, chk.Suggested.MidLen,
			chk.Suggested.EndLen, chk.Suggested.EndStart)
		printInfo("Run 'cdfctl repair' to apply it.\n")
	} else {
		printInfo("No automatic repair can be derived.\n")
	}
}
