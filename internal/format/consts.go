// Package format houses the low-level byte layout of the CDFbin vehicle
// setup format. The goal is to keep the codec focused, allocation-free where
// possible, and independent from the public API so higher-level packages can
// orchestrate the data in a more ergonomic form.
//
// CDFbin has no schema header. Fields are located by scanning the raw byte
// stream for known marker byte sequences; each marker is immediately followed
// by a fixed-width payload of little-endian scalars. The only fixed structure
// is a 0x28-byte header carrying four byte-count registers that describe the
// file's geometry.
package format

const (
	// Byte-count register offsets within the fixed header. All four are
	// unsigned 32-bit little-endian integers.
	//
	//   0x0008  R0  claimed total file length
	//   0x0014  R1  claimed middle-segment length (R3 - 0x28)
	//   0x0020  R2  claimed trailing-segment length
	//   0x0024  R3  claimed trailing-segment start offset
	RegFileLenOffset  = 0x0008
	RegMidLenOffset   = 0x0014
	RegEndLenOffset   = 0x0020
	RegEndStartOffset = 0x0024

	// HeaderSize is the boundary of the fixed header. R1 and R3 are related
	// through it: R1 == R3 - HeaderSize for a consistent file.
	HeaderSize = 0x0028

	// DWORDSize is the width of a 32-bit register field.
	DWORDSize = 4
)
