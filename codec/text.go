package codec

import "github.com/unkn0wn-root/utf8codec"

// Text is a codec for Go strings that, unlike a plain []byte conversion,
// rejects text that is not valid UTF-8 in both directions.
type Text struct{}

func (Text) Encode(s string) ([]byte, error) {
	g, err := utf8codec.Parse(s)
	if err != nil {
		return nil, err
	}
	return g.Bytes(), nil
}

func (Text) Decode(b []byte) (string, error) {
	s := string(b)
	if _, err := utf8codec.DefaultSegmenter.Segment(s); err != nil {
		return "", err
	}
	return s, nil
}

// Runes encodes code points one at a time with utf8codec.AppendEncode, so
// surrogate values are written in their 3-byte form rather than replaced.
// Decode splits with the default segmenter and therefore only accepts
// standard UTF-8.
type Runes struct{}

func (Runes) Encode(rs []rune) ([]byte, error) {
	out := make([]byte, 0, len(rs))
	for _, r := range rs {
		var err error
		if out, err = utf8codec.AppendEncode(out, r); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (Runes) Decode(b []byte) ([]rune, error) {
	return utf8codec.DefaultSegmenter.Segment(string(b))
}
