// Package codec provides Codec implementations for UTF-8 text and for
// utf8codec.Groups, the per-character byte sequences produced by Parse.
//
// The Groups codecs (JSON, CBOR, Msgpack, Protobuf) check every decoded
// group with utf8codec.Validate, so a payload that survives Decode can be
// passed to Stringify without further checks.
package codec

import "github.com/unkn0wn-root/utf8codec"

// Codec encodes/decodes values V to []byte for storage or transport.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}

var (
	_ Codec[string]           = Text{}
	_ Codec[[]rune]           = Runes{}
	_ Codec[utf8codec.Groups] = JSON{}
	_ Codec[utf8codec.Groups] = CBOR{}
	_ Codec[utf8codec.Groups] = Msgpack{}
	_ Codec[utf8codec.Groups] = Protobuf{}
	_ Codec[utf8codec.Groups] = LimitCodec[utf8codec.Groups]{}
)

// checked returns g if every group is well formed.
func checked(g utf8codec.Groups, err error) (utf8codec.Groups, error) {
	if err != nil {
		return nil, err
	}
	if err := g.Check(); err != nil {
		return nil, err
	}
	return g, nil
}
