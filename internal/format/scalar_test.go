package format

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func TestScalarWidths(t *testing.T) {
	if Byte.Width() != 1 {
		t.Fatalf("byte width = %d", Byte.Width())
	}
	for _, s := range []Scalar{Float, Int32, UInt32} {
		if s.Width() != 4 {
			t.Fatalf("%s width = %d", s, s.Width())
		}
	}
	l := Layout{Byte, Float, UInt32}
	if l.Size() != 9 {
		t.Fatalf("layout size = %d", l.Size())
	}
	if (Layout{}).Size() != 0 {
		t.Fatalf("empty layout size != 0")
	}
}

func TestScalarRoundTrip(t *testing.T) {
	cases := []struct {
		tag Scalar
		val Value
	}{
		{Byte, IntValue(Byte, 0)},
		{Byte, IntValue(Byte, 0x7F)},
		{Byte, IntValue(Byte, 0xFF)},
		{Int32, IntValue(Int32, math.MinInt32)},
		{Int32, IntValue(Int32, -1)},
		{Int32, IntValue(Int32, math.MaxInt32)},
		{UInt32, IntValue(UInt32, 0)},
		{UInt32, IntValue(UInt32, math.MaxUint32)},
		{Float, FloatValue(0)},
		{Float, FloatValue(1.5)},
		{Float, FloatValue(-123.456)},
		{Float, FloatValue(float32(math.Inf(1)))},
		{Float, FloatValue(math.SmallestNonzeroFloat32)},
	}
	for _, c := range cases {
		enc, err := EncodeScalar(nil, c.tag, c.val)
		if err != nil {
			t.Fatalf("encode %s %v: %v", c.tag, c.val, err)
		}
		if len(enc) != c.tag.Width() {
			t.Fatalf("encode %s: %d bytes", c.tag, len(enc))
		}
		dec, err := DecodeScalar(c.tag, enc)
		if err != nil {
			t.Fatalf("decode %s: %v", c.tag, err)
		}
		if c.tag == Float {
			// Bit-for-bit, not approximate.
			if math.Float32bits(dec.F) != math.Float32bits(c.val.F) {
				t.Fatalf("float bits: got %08x want %08x",
					math.Float32bits(dec.F), math.Float32bits(c.val.F))
			}
		} else if dec != c.val {
			t.Fatalf("round trip %s: got %+v want %+v", c.tag, dec, c.val)
		}
	}
}

func TestEncodeScalarRange(t *testing.T) {
	bad := []struct {
		tag Scalar
		val Value
	}{
		{Byte, IntValue(Byte, -1)},
		{Byte, IntValue(Byte, 256)},
		{Int32, IntValue(Int32, math.MaxInt32 + 1)},
		{Int32, IntValue(Int32, math.MinInt32 - 1)},
		{UInt32, IntValue(UInt32, -1)},
		{UInt32, IntValue(UInt32, math.MaxUint32 + 1)},
		{Byte, FloatValue(1)}, // kind mismatch
	}
	for _, c := range bad {
		if _, err := EncodeScalar(nil, c.tag, c.val); !errors.Is(err, ErrRange) {
			t.Fatalf("encode %s %+v: err = %v, want ErrRange", c.tag, c.val, err)
		}
	}
}

func TestDecodeScalarEndOfData(t *testing.T) {
	if _, err := DecodeScalar(UInt32, []byte{1, 2, 3}); !errors.Is(err, ErrEndOfData) {
		t.Fatalf("short uint32: %v", err)
	}
	if _, err := DecodeScalar(Byte, nil); !errors.Is(err, ErrEndOfData) {
		t.Fatalf("empty byte: %v", err)
	}
}

func TestPayloadRoundTrip(t *testing.T) {
	l := Layout{Byte, Float, Int32, UInt32}
	vals := []Value{
		IntValue(Byte, 42),
		FloatValue(3.25),
		IntValue(Int32, -7),
		IntValue(UInt32, 0xDEADBEEF),
	}
	enc, err := EncodePayload(l, vals)
	if err != nil {
		t.Fatalf("encode payload: %v", err)
	}
	if len(enc) != l.Size() {
		t.Fatalf("payload size = %d, want %d", len(enc), l.Size())
	}
	dec, raw, err := DecodePayload(l, enc, 0)
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if !bytes.Equal(raw, enc) {
		t.Fatalf("raw bytes differ")
	}
	for i := range vals {
		if dec[i] != vals[i] {
			t.Fatalf("value %d: got %+v want %+v", i, dec[i], vals[i])
		}
	}
}

func TestEncodePayloadArity(t *testing.T) {
	l := Layout{Byte, Byte}
	if _, err := EncodePayload(l, []Value{IntValue(Byte, 1)}); !errors.Is(err, ErrArityMismatch) {
		t.Fatalf("arity: %v", err)
	}
}

func TestDecodePayloadTruncated(t *testing.T) {
	l := Layout{Float, Float}
	data := make([]byte, 6) // room for one and a half floats
	if _, _, err := DecodePayload(l, data, 0); !errors.Is(err, ErrEndOfData) {
		t.Fatalf("truncated payload: %v", err)
	}
	// Empty layout decodes to zero values at any valid offset.
	vals, raw, err := DecodePayload(Layout{}, data, 6)
	if err != nil || len(vals) != 0 || len(raw) != 0 {
		t.Fatalf("empty layout: vals=%v raw=%v err=%v", vals, raw, err)
	}
}

func TestRegisterHelpers(t *testing.T) {
	buf := make([]byte, HeaderSize)
	if err := PutU32At(buf, RegEndStartOffset, 0x1234); err != nil {
		t.Fatalf("put: %v", err)
	}
	v, err := ReadU32At(buf, RegEndStartOffset)
	if err != nil || v != 0x1234 {
		t.Fatalf("read: v=%#x err=%v", v, err)
	}
	if _, err := ReadU32At(buf[:8], RegFileLenOffset); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("short read: %v", err)
	}
	if err := PutU32At(buf, HeaderSize-2, 1); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("tail write: %v", err)
	}
}

func TestParseValue(t *testing.T) {
	v, err := ParseValue(Byte, "0xFF")
	if err != nil || v.I != 255 {
		t.Fatalf("hex byte: %+v %v", v, err)
	}
	v, err = ParseValue(Int32, "-12")
	if err != nil || v.I != -12 {
		t.Fatalf("int: %+v %v", v, err)
	}
	v, err = ParseValue(Float, "1.5")
	if err != nil || v.F != 1.5 {
		t.Fatalf("float: %+v %v", v, err)
	}
	if _, err = ParseValue(UInt32, "nope"); err == nil {
		t.Fatalf("expected parse error")
	}
}
