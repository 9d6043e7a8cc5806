package cdf

import (
	"fmt"

	"github.com/RangeyRover/AMS2-CDF-File-Editor/internal/format"
)

// Edits never resize the blob. Every entry point validates fully before
// touching any byte and returns a fresh buffer, so a rejected edit leaves the
// input untouched and a partial write is never observable.

// EditField encodes values against the instance's layout and overwrites the
// payload byte range. The encoded length must equal the instance's current
// raw payload length; a differing length fails with ErrSizeMismatch and no
// change is applied.
func EditField(blob []byte, inst *FieldInstance, values []format.Value) ([]byte, error) {
	raw, err := format.EncodePayload(inst.Def.Layout, values)
	if err != nil {
		return nil, fmt.Errorf("cdf: edit %s: %w", inst.Key(), err)
	}
	if len(raw) != len(inst.Raw) {
		return nil, fmt.Errorf("cdf: edit %s: encoded %d bytes, payload is %d: %w",
			inst.Key(), len(raw), len(inst.Raw), format.ErrSizeMismatch)
	}
	return OverwriteRange(blob, inst.ValueOffset, len(inst.Raw), raw)
}

// OverwriteRange replaces length bytes at start with newBytes. It exists
// because not every byte range corresponds to a known field; unknown bytes
// are edited through it directly.
func OverwriteRange(blob []byte, start, length int, newBytes []byte) ([]byte, error) {
	if len(newBytes) != length {
		return nil, fmt.Errorf("cdf: overwrite at %#x: got %d bytes for a %d byte range: %w",
			start, len(newBytes), length, format.ErrSizeMismatch)
	}
	if start < 0 || length < 0 || start+length > len(blob) {
		return nil, fmt.Errorf("cdf: overwrite [%#x,%#x) beyond blob length %#x: %w",
			start, start+length, len(blob), format.ErrOutOfBounds)
	}
	out := make([]byte, len(blob))
	copy(out, blob)
	copy(out[start:start+length], newBytes)
	return out, nil
}

// RevertRange restores length bytes at start from the original buffer
// captured at load time.
func RevertRange(blob, original []byte, start, length int) ([]byte, error) {
	if start < 0 || length < 0 || start+length > len(original) {
		return nil, fmt.Errorf("cdf: revert [%#x,%#x) beyond original length %#x: %w",
			start, start+length, len(original), format.ErrOutOfBounds)
	}
	return OverwriteRange(blob, start, length, original[start:start+length])
}
