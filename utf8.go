package utf8codec

import "slices"

// CodePoint is a Unicode code point in [0, MaxCodePoint].
type CodePoint = rune

const (
	MaxCodePoint CodePoint = 0x10FFFF
	// UTFMax is the longest encoded sequence.
	UTFMax = 4
)

// Len returns the number of bytes Encode produces for cp,
// or -1 if cp is outside [0, MaxCodePoint].
func Len(cp CodePoint) int {
	switch {
	case cp < 0 || cp > MaxCodePoint:
		return -1
	case cp <= 0x7F:
		return 1
	case cp <= 0x7FF:
		return 2
	case cp <= 0xFFFF:
		return 3
	default:
		return 4
	}
}

// Validate reports whether b is exactly one structurally well-formed UTF-8
// sequence: a leading byte whose length marker matches len(b), followed by
// continuation bytes. It does not check the decoded value against
// MaxCodePoint and only rejects overlong forms the marker check catches.
func Validate(b []byte) bool {
	n := len(b)
	if n == 0 || n > UTFMax {
		return false
	}
	if n == 1 {
		return b[0]>>7 == 0
	}
	for _, c := range b[1:] {
		if c>>6 != 0b10 {
			return false
		}
	}
	// top n+1 bits of the leading byte must be n ones and a zero
	flags := byte(1)<<(n+1) - 1
	return (b[0]>>(7-n))&flags == flags-1
}

// Encode returns the minimal UTF-8 encoding of cp.
func Encode(cp CodePoint) ([]byte, error) {
	if err := checkRange("Encode", cp); err != nil {
		return nil, err
	}
	return appendEncoded(make([]byte, 0, Len(cp)), cp), nil
}

// AppendEncode appends the encoding of cp to dst. On error dst is returned
// unchanged.
func AppendEncode(dst []byte, cp CodePoint) ([]byte, error) {
	if err := checkRange("AppendEncode", cp); err != nil {
		return dst, err
	}
	return appendEncoded(dst, cp), nil
}

func checkRange(op string, cp CodePoint) error {
	if cp < 0 {
		return rangeErr(op, "code point can not be lower than 0, got %d", cp)
	}
	if cp > MaxCodePoint {
		return rangeErr(op, "code point can not be higher than 0x10FFFF, got %#x", cp)
	}
	return nil
}

// cp must be in range.
func appendEncoded(dst []byte, cp CodePoint) []byte {
	if cp <= 0x7F {
		return append(dst, byte(cp))
	}
	n := Len(cp)
	off := len(dst)
	dst = slices.Grow(dst, n)[:off+n]
	for i := n - 1; i >= 1; i-- {
		dst[off+i] = 0b10000000 | byte(cp&0b111111)
		cp >>= 6
	}
	dst[off] = byte((1<<n-1)<<(8-n)) | byte(cp)
	return dst
}

// Decode returns the code point encoded by b. b must pass Validate and
// decode to a value no higher than MaxCodePoint.
//
// Validate is structural, so 4-byte forms from [f4 90 80 80] to
// [f7 bf bf bf] pass it but decode above MaxCodePoint. Decode rejects them
// with ErrDecode itself rather than returning a value Encode and ToChr would
// refuse.
func Decode(b []byte) (CodePoint, error) {
	if !Validate(b) {
		return 0, decodeErr("Decode", "invalid utf8 sequence [% x]", b)
	}
	n := len(b)
	if n == 1 {
		return CodePoint(b[0]), nil
	}

	cp := CodePoint(b[0]&(byte(1)<<(8-n)-1)) << ((n - 1) * 6)
	for i := 1; i < n; i++ {
		cp += CodePoint(b[i]&0x7F) << ((n - i - 1) * 6)
	}
	// 4-byte forms pass the marker check up to 0x1FFFFF
	if cp > MaxCodePoint {
		return 0, decodeErr("Decode", "sequence [% x] decodes above 0x10FFFF", b)
	}
	return cp, nil
}
