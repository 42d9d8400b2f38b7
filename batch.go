package utf8codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Groups is an ordered list of encoded byte sequences, one per code point.
type Groups [][]byte

// Segmenter splits text into its code points. Parse only encodes what the
// segmenter yields; it owns no segmentation logic of its own. Implementations
// must return the code points of text itself, not a transformed form.
type Segmenter interface {
	Segment(text string) ([]CodePoint, error)
}

// SegmenterFunc adapts a function to Segmenter.
type SegmenterFunc func(text string) ([]CodePoint, error)

func (f SegmenterFunc) Segment(text string) ([]CodePoint, error) { return f(text) }

// DefaultSegmenter walks a Go string one code point at a time. Bytes that are
// not valid UTF-8 fail with ErrDecode at their byte offset.
var DefaultSegmenter Segmenter = runeSegmenter{}

type runeSegmenter struct{}

func (runeSegmenter) Segment(text string) ([]CodePoint, error) {
	out := make([]CodePoint, 0, utf8.RuneCountInString(text))
	for off := 0; off < len(text); {
		r, size := utf8.DecodeRuneInString(text[off:])
		if r == utf8.RuneError && size == 1 {
			return nil, &Error{Op: "Segment", Kind: ErrDecode, Msg: fmt.Sprintf("invalid utf8 byte %#x", text[off]), Index: off}
		}
		out = append(out, r)
		off += size
	}
	return out, nil
}

// Parse encodes every code point of text, in source order.
func Parse(text string) (Groups, error) {
	return ParseWith(DefaultSegmenter, text)
}

// ParseWith is Parse with a caller-supplied segmenter.
func ParseWith(seg Segmenter, text string) (Groups, error) {
	cps, err := seg.Segment(text)
	if err != nil {
		return nil, relabel("Parse", err)
	}
	// one backing array for all groups
	buf := make([]byte, 0, len(text))
	ends := make([]int, 0, len(cps))
	for i, cp := range cps {
		if err := checkRange("Parse", cp); err != nil {
			return nil, at("Parse", i, err)
		}
		buf = appendEncoded(buf, cp)
		ends = append(ends, len(buf))
	}
	out := make(Groups, len(ends))
	start := 0
	for i, end := range ends {
		out[i] = buf[start:end:end]
		start = end
	}
	return out, nil
}

// Stringify decodes every group and joins the characters. The first group
// that fails aborts the call; the error records its index.
func Stringify(g Groups) (string, error) {
	var sb strings.Builder
	sb.Grow(g.size())
	for i, b := range g {
		s, err := ToChr(b)
		if err != nil {
			return "", at("Stringify", i, err)
		}
		sb.WriteString(s)
	}
	return sb.String(), nil
}

// Check reports the first group that fails Validate.
func (g Groups) Check() error {
	for i, b := range g {
		if !Validate(b) {
			return &Error{Op: "Check", Kind: ErrDecode, Msg: fmt.Sprintf("invalid utf8 sequence [% x]", b), Index: i}
		}
	}
	return nil
}

// Bytes concatenates the groups.
func (g Groups) Bytes() []byte {
	out := make([]byte, 0, g.size())
	for _, b := range g {
		out = append(out, b...)
	}
	return out
}

// Clone returns a deep copy that shares no memory with g.
func (g Groups) Clone() Groups {
	if g == nil {
		return nil
	}
	buf := g.Bytes()
	out := make(Groups, len(g))
	start := 0
	for i, b := range g {
		end := start + len(b)
		out[i] = buf[start:end:end]
		start = end
	}
	return out
}

func (g Groups) size() int {
	n := 0
	for _, b := range g {
		n += len(b)
	}
	return n
}

// MarshalJSON writes g as an array of byte arrays, e.g. [[65],[226,130,172]].
func (g Groups) MarshalJSON() ([]byte, error) {
	if g == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.Grow(2 + g.size()*4)
	buf.WriteByte('[')
	for i, b := range g {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('[')
		for j, c := range b {
			if j > 0 {
				buf.WriteByte(',')
			}
			fmt.Fprintf(&buf, "%d", c)
		}
		buf.WriteByte(']')
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads the form MarshalJSON writes. Elements that are not
// arrays of integers in [0, 255] fail with ErrType. Group contents are not
// validated; use Check.
func (g *Groups) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw []any
	if err := dec.Decode(&raw); err != nil {
		return typeErr("UnmarshalJSON", "expects an array of byte arrays: %v", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return typeErr("UnmarshalJSON", "unexpected data after the array")
	}
	if raw == nil {
		*g = nil
		return nil
	}
	out := make(Groups, len(raw))
	for i, v := range raw {
		b, err := ToBytes(v)
		if err != nil {
			return at("UnmarshalJSON", i, err)
		}
		out[i] = b
	}
	*g = out
	return nil
}
