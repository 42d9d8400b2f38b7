package codec

import (
	"encoding/json"

	"github.com/unkn0wn-root/utf8codec"
)

// JSON encodes Groups as an array of byte arrays: [[65],[226,130,172]].
type JSON struct{}

func (JSON) Encode(g utf8codec.Groups) ([]byte, error) { return json.Marshal(g) }
func (JSON) Decode(b []byte) (utf8codec.Groups, error) {
	var g utf8codec.Groups
	err := json.Unmarshal(b, &g)
	return checked(g, err)
}
