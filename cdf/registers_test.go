package cdf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RangeyRover/AMS2-CDF-File-Editor/internal/format"
)

// cleanBlob returns a 1000-byte blob with consistent registers:
// R0=1000, R3=0x28, R2=1000-0x28, R1=0.
func cleanBlob() []byte {
	blob := make([]byte, 1000)
	format.PutU32(blob, format.RegFileLenOffset, 1000)
	format.PutU32(blob, format.RegMidLenOffset, 0)
	format.PutU32(blob, format.RegEndLenOffset, 1000-format.HeaderSize)
	format.PutU32(blob, format.RegEndStartOffset, format.HeaderSize)
	return blob
}

func TestCheckRegistersClean(t *testing.T) {
	chk, err := CheckRegisters(cleanBlob())
	require.NoError(t, err)
	assert.True(t, chk.OK)
	assert.Empty(t, chk.Problems)
	assert.Nil(t, chk.Suggested)
	assert.Equal(t, uint32(1000), chk.Regs.FileLen)
}

func TestCheckRegistersBuiltFile(t *testing.T) {
	blob := buildFile(t, []byte{1, 2, 3, 4}, []byte{5, 6})
	chk, err := CheckRegisters(blob)
	require.NoError(t, err)
	assert.True(t, chk.OK, "problems: %v", chk.Problems)
}

func TestCheckRegistersShortBlob(t *testing.T) {
	_, err := CheckRegisters(make([]byte, format.HeaderSize-1))
	require.ErrorIs(t, err, format.ErrOutOfBounds)
	_, err = ReadRegisters(nil)
	require.ErrorIs(t, err, format.ErrOutOfBounds)
}

func TestCheckRegistersStaleFileLen(t *testing.T) {
	// Only R0 is wrong: end geometry still holds, so Case A keeps it and
	// the suggestion just refreshes R0.
	blob := cleanBlob()
	format.PutU32(blob, format.RegFileLenOffset, 900)

	chk, err := CheckRegisters(blob)
	require.NoError(t, err)
	assert.False(t, chk.OK)
	require.Len(t, chk.Problems, 1)
	assert.Contains(t, chk.Problems[0], "R0 mismatch")

	require.NotNil(t, chk.Suggested)
	assert.Equal(t, Registers{
		FileLen:  1000,
		MidLen:   0,
		EndLen:   1000 - format.HeaderSize,
		EndStart: format.HeaderSize,
	}, *chk.Suggested)
}

func TestCheckRegistersTrustEndLen(t *testing.T) {
	// R3 is garbage but R2 is plausible: Case B anchors the end segment to
	// the file end.
	blob := cleanBlob()
	format.PutU32(blob, format.RegEndStartOffset, 5000)
	format.PutU32(blob, format.RegEndLenOffset, 200)

	chk, err := CheckRegisters(blob)
	require.NoError(t, err)
	require.NotNil(t, chk.Suggested)
	assert.Equal(t, uint32(800), chk.Suggested.EndStart)
	assert.Equal(t, uint32(200), chk.Suggested.EndLen)
	assert.Equal(t, uint32(800-format.HeaderSize), chk.Suggested.MidLen)
	assert.Equal(t, uint32(1000), chk.Suggested.FileLen)
}

func TestCheckRegistersTrustEndStart(t *testing.T) {
	// R2 is garbage but R3 is plausible: Case C extends the end segment to
	// the file end.
	blob := cleanBlob()
	format.PutU32(blob, format.RegEndStartOffset, 600)
	format.PutU32(blob, format.RegEndLenOffset, 5000)

	chk, err := CheckRegisters(blob)
	require.NoError(t, err)
	require.NotNil(t, chk.Suggested)
	assert.Equal(t, uint32(600), chk.Suggested.EndStart)
	assert.Equal(t, uint32(400), chk.Suggested.EndLen)
	assert.Equal(t, uint32(600-format.HeaderSize), chk.Suggested.MidLen)
}

func TestCheckRegistersUnrepairable(t *testing.T) {
	// Both geometry registers zero: nothing to trust, no suggestion.
	blob := cleanBlob()
	format.PutU32(blob, format.RegEndStartOffset, 0)
	format.PutU32(blob, format.RegEndLenOffset, 0)

	chk, err := CheckRegisters(blob)
	require.NoError(t, err)
	assert.False(t, chk.OK)
	assert.Nil(t, chk.Suggested)
}

func TestCheckRegistersEndStartBelowHeader(t *testing.T) {
	blob := cleanBlob()
	format.PutU32(blob, format.RegEndStartOffset, 0x10)
	format.PutU32(blob, format.RegEndLenOffset, 1000-0x10)

	chk, err := CheckRegisters(blob)
	require.NoError(t, err)
	assert.False(t, chk.OK)

	found := false
	for _, p := range chk.Problems {
		if strings.HasPrefix(p, "R3 <") {
			found = true
		}
	}
	assert.True(t, found, "expected an R3 problem, got %v", chk.Problems)
}

func TestApplyRegisterFixRoundTrip(t *testing.T) {
	blob := cleanBlob()
	format.PutU32(blob, format.RegFileLenOffset, 900)

	chk, err := CheckRegisters(blob)
	require.NoError(t, err)
	require.NotNil(t, chk.Suggested)

	fixed, err := ApplyRegisterFix(blob, chk.Suggested)
	require.NoError(t, err)
	assert.Len(t, fixed, len(blob))

	// Input untouched, output consistent.
	assert.Equal(t, uint32(900), format.ReadU32(blob, format.RegFileLenOffset))
	after, err := CheckRegisters(fixed)
	require.NoError(t, err)
	assert.True(t, after.OK, "problems: %v", after.Problems)
}

func TestApplyRegisterFixNil(t *testing.T) {
	_, err := ApplyRegisterFix(cleanBlob(), nil)
	assert.Error(t, err)
}

func TestApplyRegisterFixOnlyTouchesRegisters(t *testing.T) {
	blob := cleanBlob()
	for i := format.HeaderSize; i < len(blob); i++ {
		blob[i] = byte(i)
	}
	fixed, err := ApplyRegisterFix(blob, &Registers{
		FileLen: 1000, MidLen: 0,
		EndLen: 1000 - format.HeaderSize, EndStart: format.HeaderSize,
	})
	require.NoError(t, err)
	assert.Equal(t, blob[format.HeaderSize:], fixed[format.HeaderSize:])
}
