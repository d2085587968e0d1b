package snapshot

import (
	"github.com/vmihailenco/msgpack/v5"

	"github.com/relictools/ucs"
	"github.com/relictools/ucs/internal/wire"
)

// Msgpack serializes tables using vmihailenco/msgpack/v5.
// The zero value is ready to use.
//
// Msgpack payloads are compact and fast to decode; CBOR's deterministic mode
// is the better pick when snapshot bytes must be byte-for-byte stable.
type Msgpack struct{}

var _ Codec = Msgpack{}

func (Msgpack) ID() byte { return wire.CodecMsgpack }

func (Msgpack) Marshal(t ucs.StringTable) ([]byte, error) {
	return msgpack.Marshal(map[int]string(t))
}

func (Msgpack) Unmarshal(b []byte) (ucs.StringTable, error) {
	var m map[int]string
	if err := msgpack.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return ucs.StringTable(m), nil
}
