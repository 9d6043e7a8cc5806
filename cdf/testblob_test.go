package cdf

import (
	"testing"

	"github.com/RangeyRover/AMS2-CDF-File-Editor/cdf/defs"
	"github.com/RangeyRover/AMS2-CDF-File-Editor/internal/format"
	"github.com/stretchr/testify/require"
)

// buildFile assembles a blob with a fixed header, consistent byte-count
// registers, the mid segment and the end segment.
func buildFile(tb testing.TB, mid, end []byte) []byte {
	tb.Helper()
	total := format.HeaderSize + len(mid) + len(end)
	blob := make([]byte, total)
	format.PutU32(blob, format.RegFileLenOffset, uint32(total))
	format.PutU32(blob, format.RegMidLenOffset, uint32(len(mid)))
	format.PutU32(blob, format.RegEndLenOffset, uint32(len(end)))
	format.PutU32(blob, format.RegEndStartOffset, uint32(format.HeaderSize+len(mid)))
	copy(blob[format.HeaderSize:], mid)
	copy(blob[format.HeaderSize+len(mid):], end)
	return blob
}

func testTable(tb testing.TB, list ...*defs.Def) *defs.Table {
	tb.Helper()
	table, err := defs.NewTable(list)
	require.NoError(tb, err)
	return table
}

// f32le returns the little-endian bytes of a float32.
func f32le(v float32) []byte {
	b := make([]byte, 4)
	format.PutF32(b, 0, v)
	return b
}

func cat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
