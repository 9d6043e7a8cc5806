package printer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumpLineFormat(t *testing.T) {
	blob := []byte("CDFbin\x00\x01ABCDEFGH")
	var sb strings.Builder
	require.NoError(t, Dump(&sb, blob, DefaultOptions()))

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 1)
	assert.Equal(t,
		"00000000  43 44 46 62 69 6e 00 01 41 42 43 44 45 46 47 48  |CDFbin..ABCDEFGH|",
		lines[0])
}

func TestDumpPartialLastLine(t *testing.T) {
	blob := make([]byte, 20)
	var sb strings.Builder
	require.NoError(t, Dump(&sb, blob, DefaultOptions()))

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	// Hex column stays padded to full width on the short row.
	assert.Equal(t,
		"00000010  00 00 00 00                                      |....|",
		lines[1])
}

func TestDumpStartAndLength(t *testing.T) {
	blob := make([]byte, 64)
	blob[32] = 0xAB
	var sb strings.Builder
	require.NoError(t, Dump(&sb, blob, Options{BytesPerLine: 16, Start: 32, Length: 16}))

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "00000020  ab 00"))
}

func TestDumpAnnotation(t *testing.T) {
	blob := make([]byte, 48)
	opts := DefaultOptions()
	opts.Annotate = func(off int) (string, bool) {
		if off >= 16 && off < 40 {
			return "GENERAL/Fuel#0", true
		}
		return "", false
	}
	var sb strings.Builder
	require.NoError(t, Dump(&sb, blob, opts))

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.NotContains(t, lines[0], "GENERAL/Fuel#0")
	assert.Contains(t, lines[1], "<- GENERAL/Fuel#0")
	// The label is only printed once per span, not repeated per row.
	assert.NotContains(t, lines[2], "GENERAL/Fuel#0")
}

func TestDumpEmptyRange(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, Dump(&sb, nil, DefaultOptions()))
	assert.Empty(t, sb.String())

	require.NoError(t, Dump(&sb, []byte{1, 2}, Options{Start: 10}))
	assert.Empty(t, sb.String())
}
