package codec

import (
	"errors"
	"fmt"
)

// ErrPayloadTooLarge is returned when a LimitCodec bound is exceeded.
var ErrPayloadTooLarge = errors.New("codec: payload too large")

// LimitCodec wraps another codec to enforce maximum payload sizes.
// A bound <= 0 disables that check.
//
// Typical use: protect Decode against oversized inputs coming from a shared
// cache or an untrusted peer.
type LimitCodec[V any] struct {
	// Inner is the underlying codec being wrapped. It must be set.
	Inner Codec[V]
	// MaxDecode is the maximum length in bytes of a payload passed to
	// Decode. Larger payloads are rejected without invoking Inner.
	MaxDecode int
	// MaxEncode is the maximum length in bytes of a payload produced by
	// Encode.
	MaxEncode int
}

func (c LimitCodec[V]) Encode(v V) ([]byte, error) {
	b, err := c.Inner.Encode(v)
	if err != nil {
		return nil, err
	}
	if c.MaxEncode > 0 && len(b) > c.MaxEncode {
		return nil, fmt.Errorf("%w: encoded %d > %d", ErrPayloadTooLarge, len(b), c.MaxEncode)
	}
	return b, nil
}

func (c LimitCodec[V]) Decode(b []byte) (V, error) {
	if c.MaxDecode > 0 && len(b) > c.MaxDecode {
		var zero V
		return zero, fmt.Errorf("%w: %d > %d", ErrPayloadTooLarge, len(b), c.MaxDecode)
	}
	return c.Inner.Decode(b)
}
