package codec

import (
	"github.com/unkn0wn-root/utf8codec"
	"github.com/vmihailenco/msgpack/v5"
)

// Msgpack encodes Groups as a msgpack array of bin values.
// The zero value is ready to use.
type Msgpack struct{}

func (Msgpack) Encode(g utf8codec.Groups) ([]byte, error) {
	return msgpack.Marshal([][]byte(g))
}
func (Msgpack) Decode(b []byte) (utf8codec.Groups, error) {
	var g [][]byte
	err := msgpack.Unmarshal(b, &g)
	return checked(g, err)
}
