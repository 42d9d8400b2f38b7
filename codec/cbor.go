package codec

import (
	"github.com/fxamacker/cbor/v2"
	"github.com/unkn0wn-root/utf8codec"
)

// CBOR encodes Groups as a CBOR array of byte strings using fxamacker/cbor.
// The zero value is NOT ready to use. Construct with NewCBOR or MustCBOR.
//
// Use deterministic=true for Core Deterministic Encoding (RFC 8949) when
// the output is hashed or compared byte for byte.
type CBOR struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

// NewCBOR constructs a CBOR codec. maxGroups caps the number of array
// elements accepted by Decode; 0 keeps the library default.
func NewCBOR(deterministic bool, maxGroups int) (CBOR, error) {
	var eo cbor.EncOptions
	if deterministic {
		eo = cbor.CoreDetEncOptions()
	} else {
		eo = cbor.PreferredUnsortedEncOptions()
	}
	em, err := eo.EncMode()
	if err != nil {
		return CBOR{}, err
	}

	do := cbor.DecOptions{}
	if maxGroups > 0 {
		do.MaxArrayElements = maxGroups
	}
	dm, err := do.DecMode()
	if err != nil {
		return CBOR{}, err
	}
	return CBOR{enc: em, dec: dm}, nil
}

// MustCBOR is like NewCBOR but panics on error.
func MustCBOR(deterministic bool, maxGroups int) CBOR {
	c, err := NewCBOR(deterministic, maxGroups)
	if err != nil {
		panic(err)
	}
	return c
}

func (c CBOR) Encode(g utf8codec.Groups) ([]byte, error) {
	return c.enc.Marshal([][]byte(g))
}

func (c CBOR) Decode(b []byte) (utf8codec.Groups, error) {
	var g [][]byte
	err := c.dec.Unmarshal(b, &g)
	return checked(g, err)
}
