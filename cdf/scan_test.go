package cdf

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindAllBasic(t *testing.T) {
	blob := []byte("xxMARKyyMARKzz")
	assert.Equal(t, []int{2, 8}, FindAll(blob, []byte("MARK")))
}

func TestFindAllOverlapping(t *testing.T) {
	// Matches at 0 and 2 share the middle AA BB. A scan resuming past the
	// whole match would report only the first.
	blob := []byte{0xAA, 0xBB, 0xAA, 0xBB, 0xAA}
	needle := []byte{0xAA, 0xBB, 0xAA}
	assert.Equal(t, []int{0, 2}, FindAll(blob, needle))
}

func TestFindAllNoMatch(t *testing.T) {
	assert.Nil(t, FindAll([]byte{1, 2, 3}, []byte{9}))
}

func TestFindAllEmptyNeedle(t *testing.T) {
	assert.Nil(t, FindAll([]byte{1, 2, 3}, nil))
	assert.Nil(t, FindAll([]byte{1, 2, 3}, []byte{}))
}

func TestFindAllNeedleLongerThanBlob(t *testing.T) {
	assert.Nil(t, FindAll([]byte{1}, []byte{1, 2}))
}

func TestFindAllRepeatedByte(t *testing.T) {
	blob := bytes.Repeat([]byte{0x00}, 5)
	assert.Equal(t, []int{0, 1, 2, 3}, FindAll(blob, []byte{0x00, 0x00}))
}
