package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
)

const version byte = 1

// Codec identifiers carried in the envelope so snapshot readers are
// self-describing.
const (
	CodecCBOR    byte = 1
	CodecMsgpack byte = 2
)

var (
	ErrCorrupt = errors.New("ucs: corrupt snapshot")
	magic4     = [...]byte{'U', 'C', 'S', 'S'}
)

const headerLen = 4 + 1 + 1 + 4

// Encode frames a snapshot payload:
//
//	magic(4) | ver(1) | codec(1) | plen(u32 be) | payload(plen)
func Encode(codecID byte, payload []byte) []byte {
	out := make([]byte, 0, headerLen+len(payload))
	out = append(out, magic4[:]...)
	out = append(out, version, codecID)

	var u4 [4]byte
	binary.BigEndian.PutUint32(u4[:], uint32(len(payload)))
	out = append(out, u4[:]...)

	return append(out, payload...)
}

// Decode validates the envelope and returns the codec id and payload. The
// payload aliases b. Trailing bytes beyond the declared length are corrupt,
// as is any header mismatch or truncation.
func Decode(b []byte) (codecID byte, payload []byte, err error) {
	if len(b) < headerLen || !bytes.Equal(b[:4], magic4[:]) || b[4] != version {
		return 0, nil, ErrCorrupt
	}
	plen := int(binary.BigEndian.Uint32(b[6:10]))
	if plen < 0 || plen != len(b)-headerLen {
		return 0, nil, ErrCorrupt
	}
	return b[5], b[headerLen:], nil
}
