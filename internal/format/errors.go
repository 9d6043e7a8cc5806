package format

import "errors"

var (
	// ErrEndOfData indicates a decode ran past the available bytes. Short
	// input is never zero-padded.
	ErrEndOfData = errors.New("format: end of data")
	// ErrArityMismatch indicates an encode was given the wrong number of
	// values for a layout.
	ErrArityMismatch = errors.New("format: value arity mismatch")
	// ErrRange indicates a numeric value does not fit its declared scalar
	// width.
	ErrRange = errors.New("format: value out of range")
	// ErrOutOfBounds indicates a fixed-offset read or write beyond the
	// buffer length.
	ErrOutOfBounds = errors.New("format: offset out of bounds")
	// ErrSizeMismatch indicates an edit whose byte length differs from its
	// target range. In-place edits must never change the file length.
	ErrSizeMismatch = errors.New("format: size mismatch")
)
