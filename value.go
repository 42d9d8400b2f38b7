package utf8codec

import (
	"encoding/json"
	"math"
)

// EncodeValue is Encode for values whose type is only known at run time,
// such as numbers decoded from JSON, CBOR or msgpack. Anything that is not an
// integer-valued number fails with ErrType.
func EncodeValue(v any) ([]byte, error) {
	n, ok := integerValue(v)
	if !ok {
		return nil, typeErr("EncodeValue", "code point has to be an integer, got %T", v)
	}
	switch {
	case n < 0:
		return nil, rangeErr("EncodeValue", "code point can not be lower than 0, got %d", n)
	case n > int64(MaxCodePoint):
		return nil, rangeErr("EncodeValue", "code point can not be higher than 0x10FFFF, got %#x", n)
	}
	return appendEncoded(make([]byte, 0, UTFMax), CodePoint(n)), nil
}

// DecodeValue is Decode for values whose type is only known at run time.
// See ToBytes for the accepted shapes.
func DecodeValue(v any) (CodePoint, error) {
	b, err := ToBytes(v)
	if err != nil {
		return 0, relabel("DecodeValue", err)
	}
	return Decode(b)
}

// ToBytes converts an array-like value to a byte sequence. It accepts
// []byte, slices of Go integer and float types and []any whose elements are
// integer-valued numbers; every element must be in [0, 255]. Anything else
// fails with ErrType.
func ToBytes(v any) ([]byte, error) {
	switch s := v.(type) {
	case []byte:
		return s, nil
	case []int:
		return intsToBytes(s)
	case []int8:
		return intsToBytes(s)
	case []int16:
		return intsToBytes(s)
	case []int32:
		return intsToBytes(s)
	case []int64:
		return intsToBytes(s)
	case []uint:
		return intsToBytes(s)
	case []uint16:
		return intsToBytes(s)
	case []uint32:
		return intsToBytes(s)
	case []uint64:
		return intsToBytes(s)
	case []float32:
		return floatsToBytes(s)
	case []float64:
		return floatsToBytes(s)
	case []any:
		out := make([]byte, len(s))
		for i, e := range s {
			n, ok := integerValue(e)
			if !ok || n < 0 || n > math.MaxUint8 {
				return nil, &Error{Op: "ToBytes", Kind: ErrType, Msg: "element is not a byte value", Index: i}
			}
			out[i] = byte(n)
		}
		return out, nil
	default:
		return nil, typeErr("ToBytes", "expects an array of bytes, got %T", v)
	}
}

type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint16 | ~uint32 | ~uint64
}

func intsToBytes[T integer](s []T) ([]byte, error) {
	out := make([]byte, len(s))
	for i, e := range s {
		if e < 0 || uint64(e) > math.MaxUint8 {
			return nil, &Error{Op: "ToBytes", Kind: ErrType, Msg: "element is not a byte value", Index: i}
		}
		out[i] = byte(e)
	}
	return out, nil
}

func floatsToBytes[T ~float32 | ~float64](s []T) ([]byte, error) {
	out := make([]byte, len(s))
	for i, e := range s {
		n, ok := floatValue(float64(e))
		if !ok || n < 0 || n > math.MaxUint8 {
			return nil, &Error{Op: "ToBytes", Kind: ErrType, Msg: "element is not a byte value", Index: i}
		}
		out[i] = byte(n)
	}
	return out, nil
}

// integerValue reports v as an int64 when v is an integer-valued number.
// Magnitudes beyond int64 saturate; callers only range-check them.
func integerValue(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return saturate(uint64(n)), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return saturate(n), true
	case float32:
		return floatValue(float64(n))
	case float64:
		return floatValue(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return floatValue(f)
	default:
		return 0, false
	}
}

func saturate(u uint64) int64 {
	if u > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(u)
}

func floatValue(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Trunc(f) != f {
		return 0, false
	}
	switch {
	case f >= math.MaxInt64:
		return math.MaxInt64, true
	case f <= math.MinInt64:
		return math.MinInt64, true
	}
	return int64(f), true
}
