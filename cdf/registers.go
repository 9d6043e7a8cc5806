package cdf

import (
	"fmt"

	"github.com/RangeyRover/AMS2-CDF-File-Editor/internal/format"
)

// Registers holds the four byte-count registers from the fixed header.
//
//	FileLen  (R0, 0x0008)  claimed total file length
//	MidLen   (R1, 0x0014)  claimed middle-segment length
//	EndLen   (R2, 0x0020)  claimed trailing-segment length
//	EndStart (R3, 0x0024)  claimed trailing-segment start offset
type Registers struct {
	FileLen  uint32 `json:"r0_file_len"`
	MidLen   uint32 `json:"r1_mid_len"`
	EndLen   uint32 `json:"r2_end_len"`
	EndStart uint32 `json:"r3_end_start"`
}

// RegisterCheck is the result of validating the byte-count registers against
// the actual file length. Register inconsistency is not fatal: every violated
// relationship is reported as its own problem, and Suggested carries a
// conservative repair when one can be derived. Suggested is nil when the
// registers are too degenerate to trust; such a file cannot be repaired
// automatically.
type RegisterCheck struct {
	OK        bool       `json:"ok"`
	Problems  []string   `json:"problems,omitempty"`
	Regs      Registers  `json:"registers"`
	Suggested *Registers `json:"suggested,omitempty"`
}

// ReadRegisters reads R0..R3. It fails with ErrOutOfBounds when the blob is
// shorter than the fixed header.
func ReadRegisters(blob []byte) (Registers, error) {
	if len(blob) < format.HeaderSize {
		return Registers{}, fmt.Errorf("cdf: blob too small for header (%d < %#x): %w",
			len(blob), format.HeaderSize, format.ErrOutOfBounds)
	}
	return Registers{
		FileLen:  format.ReadU32(blob, format.RegFileLenOffset),
		MidLen:   format.ReadU32(blob, format.RegMidLenOffset),
		EndLen:   format.ReadU32(blob, format.RegEndLenOffset),
		EndStart: format.ReadU32(blob, format.RegEndStartOffset),
	}, nil
}

// CheckRegisters validates the declared relationships:
//
//	R0 == len(blob)
//	R3 + R2 == len(blob)
//	R3 >= 0x28 and R1 == R3 - 0x28
//
// All relationships are checked independently so the caller sees the full
// diagnostic, not just the first violation.
func CheckRegisters(blob []byte) (*RegisterCheck, error) {
	regs, err := ReadRegisters(blob)
	if err != nil {
		return nil, err
	}
	fileLen := uint32(len(blob))

	var problems []string
	if regs.EndStart > fileLen {
		problems = append(problems, fmt.Sprintf(
			"R3 (end start) out of range: %d > file length %d", regs.EndStart, fileLen))
	}
	if regs.EndLen > fileLen {
		problems = append(problems, fmt.Sprintf(
			"R2 (end length) out of range: %d > file length %d", regs.EndLen, fileLen))
	}
	if regs.EndStart <= fileLen && regs.EndLen <= fileLen {
		if regs.EndStart+regs.EndLen != fileLen {
			problems = append(problems, fmt.Sprintf(
				"end geometry mismatch: R3+R2=%d != file length %d",
				regs.EndStart+regs.EndLen, fileLen))
		}
	}
	if regs.FileLen != fileLen {
		problems = append(problems, fmt.Sprintf(
			"R0 mismatch: R0=%d != file length %d", regs.FileLen, fileLen))
	}
	if regs.EndStart >= format.HeaderSize {
		if want := regs.EndStart - format.HeaderSize; regs.MidLen != want {
			problems = append(problems, fmt.Sprintf(
				"R1 mismatch: R1=%d != (R3-%#x)=%d", regs.MidLen, format.HeaderSize, want))
		}
	} else {
		problems = append(problems, fmt.Sprintf(
			"R3 < %#x (unexpected): R3=%d", format.HeaderSize, regs.EndStart))
	}

	chk := &RegisterCheck{
		OK:       len(problems) == 0,
		Problems: problems,
		Regs:     regs,
	}
	if !chk.OK {
		chk.Suggested = suggestRepair(regs, fileLen)
	}
	return chk, nil
}

// suggestRepair derives a conservative corrected register set. First
// applicable case wins:
//
//	A: R3 and R2 are both in range and already sum to the file length;
//	   keep them as the trailing-segment geometry.
//	B: R2 alone is plausible; anchor the trailing segment to the file end.
//	C: R3 alone is plausible; extend the trailing segment to the file end.
//
// When no case applies the file is not automatically repairable and nil is
// returned.
func suggestRepair(regs Registers, fileLen uint32) *Registers {
	var endStart, endLen uint32
	switch {
	case regs.EndStart <= fileLen && regs.EndLen <= fileLen &&
		regs.EndStart+regs.EndLen == fileLen:
		endStart, endLen = regs.EndStart, regs.EndLen
	case regs.EndLen > 0 && regs.EndLen <= fileLen:
		endStart, endLen = fileLen-regs.EndLen, regs.EndLen
	case regs.EndStart > 0 && regs.EndStart <= fileLen:
		endStart, endLen = regs.EndStart, fileLen-regs.EndStart
	default:
		return nil
	}

	var midLen uint32
	if endStart > format.HeaderSize {
		midLen = endStart - format.HeaderSize
	}
	return &Registers{
		FileLen:  fileLen,
		MidLen:   midLen,
		EndLen:   endLen,
		EndStart: endStart,
	}
}

// ApplyRegisterFix overwrites exactly the four register fields with fix and
// returns the new buffer. The blob length never changes.
func ApplyRegisterFix(blob []byte, fix *Registers) ([]byte, error) {
	if fix == nil {
		return nil, fmt.Errorf("cdf: no register fix to apply")
	}
	if len(blob) < format.HeaderSize {
		return nil, fmt.Errorf("cdf: blob too small for header (%d < %#x): %w",
			len(blob), format.HeaderSize, format.ErrOutOfBounds)
	}
	out := make([]byte, len(blob))
	copy(out, blob)
	format.PutU32(out, format.RegFileLenOffset, fix.FileLen)
	format.PutU32(out, format.RegMidLenOffset, fix.MidLen)
	format.PutU32(out, format.RegEndLenOffset, fix.EndLen)
	format.PutU32(out, format.RegEndStartOffset, fix.EndStart)
	return out, nil
}
