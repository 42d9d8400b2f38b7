package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
)

const version byte = 1

var (
	ErrCorrupt = errors.New("utf8codec: corrupt entry")
	magic4     = [...]byte{'U', 'T', 'F', '8'}
)

const hdr = 4 + 1 + 4

func hasMagic(b []byte) bool {
	return len(b) >= 4 && bytes.Equal(b[:4], magic4[:])
}

// Groups: magic(4) | ver(1) | n(u32 be) | { glen(u8) | group(glen) } * n
//
// Groups must be 1..255 bytes long; the frame does not look inside them.
func EncodeGroups(groups [][]byte) ([]byte, error) {
	total := hdr
	for _, g := range groups {
		if l := len(g); l == 0 || l > 0xFF {
			return nil, errors.New("utf8codec: invalid group length in frame")
		}
		total += 1 + len(g)
	}

	var buf bytes.Buffer
	buf.Grow(total)

	buf.Write(magic4[:])
	buf.WriteByte(version)

	var u4 [4]byte
	binary.BigEndian.PutUint32(u4[:], uint32(len(groups)))
	buf.Write(u4[:])

	for _, g := range groups {
		buf.WriteByte(byte(len(g)))
		buf.Write(g)
	}
	return buf.Bytes(), nil
}

// DecodeGroups parses a frame written by EncodeGroups. The returned groups
// alias b. Trailing bytes are rejected.
func DecodeGroups(b []byte) ([][]byte, error) {
	if len(b) < hdr || !hasMagic(b) || b[4] != version {
		return nil, ErrCorrupt
	}

	off := 5
	n := int(binary.BigEndian.Uint32(b[off : off+4]))
	off += 4
	// every group takes at least 2 bytes
	if n < 0 || n > (len(b)-off)/2 {
		return nil, ErrCorrupt
	}

	groups := make([][]byte, 0, n)
	for i := 0; i < n; i++ {
		if off >= len(b) {
			return nil, ErrCorrupt
		}
		glen := int(b[off])
		off++
		if glen == 0 || glen > len(b)-off {
			return nil, ErrCorrupt
		}
		groups = append(groups, b[off:off+glen:off+glen])
		off += glen
	}
	if off != len(b) {
		return nil, ErrCorrupt
	}
	return groups, nil
}
