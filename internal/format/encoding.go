package format

import (
	"encoding/binary"
	"math"
)

// Binary encoding utilities for little-endian scalars.
//
// Implementation: encoding/binary.LittleEndian. The standard library
// primitives are inlined by the compiler; nothing fancier is warranted for
// 1- and 4-byte fields.

// PutU32 writes a uint32 value to the buffer at the specified offset in little-endian format.
func PutU32(b []byte, off int, v uint32) {
	binary.LittleEndian.PutUint32(b[off:off+4], v)
}

// PutI32 writes an int32 value to the buffer at the specified offset in little-endian format.
func PutI32(b []byte, off int, v int32) {
	binary.LittleEndian.PutUint32(b[off:off+4], uint32(v))
}

// PutF32 writes an IEEE-754 single-precision value to the buffer at the specified offset.
func PutF32(b []byte, off int, v float32) {
	binary.LittleEndian.PutUint32(b[off:off+4], math.Float32bits(v))
}

// ReadU32 reads a uint32 value from the buffer at the specified offset in little-endian format.
func ReadU32(b []byte, off int) uint32 {
	return binary.LittleEndian.Uint32(b[off : off+4])
}

// ReadI32 reads an int32 value from the buffer at the specified offset in little-endian format.
func ReadI32(b []byte, off int) int32 {
	return int32(binary.LittleEndian.Uint32(b[off : off+4]))
}

// ReadF32 reads an IEEE-754 single-precision value from the buffer at the specified offset.
func ReadF32(b []byte, off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b[off : off+4]))
}

// ReadU32At is the bounds-checked variant of ReadU32 used for header
// register access, where the blob may be shorter than the fixed header.
func ReadU32At(b []byte, off int) (uint32, error) {
	if off < 0 || off+DWORDSize > len(b) {
		return 0, ErrOutOfBounds
	}
	return ReadU32(b, off), nil
}

// PutU32At is the bounds-checked variant of PutU32.
func PutU32At(b []byte, off int, v uint32) error {
	if off < 0 || off+DWORDSize > len(b) {
		return ErrOutOfBounds
	}
	PutU32(b, off, v)
	return nil
}
