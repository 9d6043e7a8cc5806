package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Scalar is a payload scalar type tag.
type Scalar uint8

const (
	// Byte is an unsigned 8-bit integer.
	Byte Scalar = iota
	// Float is an IEEE-754 single-precision value.
	Float
	// Int32 is a signed 32-bit little-endian integer.
	Int32
	// UInt32 is an unsigned 32-bit little-endian integer.
	UInt32
)

// Width returns the encoded width of the scalar in bytes.
func (s Scalar) Width() int {
	if s == Byte {
		return 1
	}
	return DWORDSize
}

func (s Scalar) String() string {
	switch s {
	case Byte:
		return "byte"
	case Float:
		return "float"
	case Int32:
		return "int32"
	case UInt32:
		return "uint32"
	default:
		return fmt.Sprintf("scalar(%d)", uint8(s))
	}
}

// ParseScalar parses a scalar type tag name as it appears in definition
// tables ("byte", "float", "int32", "uint32").
func ParseScalar(s string) (Scalar, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "byte":
		return Byte, nil
	case "float":
		return Float, nil
	case "int32":
		return Int32, nil
	case "uint32":
		return UInt32, nil
	default:
		return 0, fmt.Errorf("format: unknown scalar type %q", s)
	}
}

// Layout is the ordered scalar sequence of a field payload. An empty layout
// is valid: the field is marker-only.
type Layout []Scalar

// Size returns the total encoded payload width in bytes.
func (l Layout) Size() int {
	n := 0
	for _, s := range l {
		n += s.Width()
	}
	return n
}

func (l Layout) String() string {
	if len(l) == 0 {
		return "(none)"
	}
	parts := make([]string, len(l))
	for i, s := range l {
		parts[i] = s.String()
	}
	return strings.Join(parts, ",")
}

// Value is one decoded scalar. Kind selects which field carries the payload:
// I for byte/int32/uint32, F for float. Values are comparable, so instance
// tuples can be compared directly in tests.
type Value struct {
	Kind Scalar
	I    int64
	F    float32
}

// IntValue returns an integer value of the given kind. Range checking is
// deferred to encode time so out-of-range input surfaces as ErrRange.
func IntValue(kind Scalar, v int64) Value {
	return Value{Kind: kind, I: v}
}

// FloatValue returns a float scalar value.
func FloatValue(v float32) Value {
	return Value{Kind: Float, F: v}
}

// String formats the value the way the setup tooling displays it: floats
// with %.6g, integers in decimal.
func (v Value) String() string {
	if v.Kind == Float {
		return strconv.FormatFloat(float64(v.F), 'g', 6, 32)
	}
	return strconv.FormatInt(v.I, 10)
}

// ParseValue parses a user-entered scalar string for the given type tag.
// Integers accept decimal or 0x-prefixed hex.
func ParseValue(t Scalar, s string) (Value, error) {
	s = strings.TrimSpace(s)
	if t == Float {
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return Value{}, fmt.Errorf("format: bad float %q: %w", s, err)
		}
		return FloatValue(float32(f)), nil
	}
	n, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return Value{}, fmt.Errorf("format: bad integer %q: %w", s, err)
	}
	return IntValue(t, n), nil
}

// DecodeScalar decodes one scalar from the front of b. It fails with
// ErrEndOfData when fewer than Width bytes remain; it never zero-pads.
func DecodeScalar(t Scalar, b []byte) (Value, error) {
	if len(b) < t.Width() {
		return Value{}, fmt.Errorf("decoding %s: have %d of %d bytes: %w",
			t, len(b), t.Width(), ErrEndOfData)
	}
	switch t {
	case Byte:
		return Value{Kind: Byte, I: int64(b[0])}, nil
	case Float:
		return Value{Kind: Float, F: ReadF32(b, 0)}, nil
	case Int32:
		return Value{Kind: Int32, I: int64(ReadI32(b, 0))}, nil
	case UInt32:
		return Value{Kind: UInt32, I: int64(ReadU32(b, 0))}, nil
	default:
		return Value{}, fmt.Errorf("format: unknown scalar tag %d", uint8(t))
	}
}

// EncodeScalar appends the exact wire encoding of v as type t to dst.
// Integer values that do not fit the declared width fail with ErrRange.
func EncodeScalar(dst []byte, t Scalar, v Value) ([]byte, error) {
	if v.Kind != t {
		return nil, fmt.Errorf("encoding %s: value is %s: %w", t, v.Kind, ErrRange)
	}
	switch t {
	case Byte:
		if v.I < 0 || v.I > math.MaxUint8 {
			return nil, fmt.Errorf("encoding byte: %d: %w", v.I, ErrRange)
		}
		return append(dst, byte(v.I)), nil
	case Float:
		var buf [DWORDSize]byte
		PutF32(buf[:], 0, v.F)
		return append(dst, buf[:]...), nil
	case Int32:
		if v.I < math.MinInt32 || v.I > math.MaxInt32 {
			return nil, fmt.Errorf("encoding int32: %d: %w", v.I, ErrRange)
		}
		var buf [DWORDSize]byte
		PutI32(buf[:], 0, int32(v.I))
		return append(dst, buf[:]...), nil
	case UInt32:
		if v.I < 0 || v.I > math.MaxUint32 {
			return nil, fmt.Errorf("encoding uint32: %d: %w", v.I, ErrRange)
		}
		var buf [DWORDSize]byte
		PutU32(buf[:], 0, uint32(v.I))
		return append(dst, buf[:]...), nil
	default:
		return nil, fmt.Errorf("format: unknown scalar tag %d", uint8(t))
	}
}

// DecodePayload decodes the layout starting at off in data. It returns the
// decoded values and the raw payload bytes consumed. The raw slice aliases
// data.
func DecodePayload(l Layout, data []byte, off int) ([]Value, []byte, error) {
	if off < 0 || off > len(data) {
		return nil, nil, fmt.Errorf("payload at %#x: %w", off, ErrOutOfBounds)
	}
	vals := make([]Value, 0, len(l))
	pos := off
	for _, t := range l {
		v, err := DecodeScalar(t, data[pos:])
		if err != nil {
			return nil, nil, fmt.Errorf("at %#x: %w", pos, err)
		}
		vals = append(vals, v)
		pos += t.Width()
	}
	return vals, data[off:pos], nil
}

// EncodePayload encodes values against the layout. The value count must
// match the layout arity exactly.
func EncodePayload(l Layout, vals []Value) ([]byte, error) {
	if len(vals) != len(l) {
		return nil, fmt.Errorf("expected %d values, got %d: %w",
			len(l), len(vals), ErrArityMismatch)
	}
	out := make([]byte, 0, l.Size())
	for i, t := range l {
		var err error
		out, err = EncodeScalar(out, t, vals[i])
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
	}
	return out, nil
}
