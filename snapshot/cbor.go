package snapshot

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/relictools/ucs"
	"github.com/relictools/ucs/internal/wire"
)

// CBOR serializes tables using fxamacker/cbor.
// The zero value is NOT ready to use. Construct with NewCBOR or MustCBOR.
//
// Use deterministic=true for canonical encoding (RFC 8949 Core Deterministic)
// when snapshot bytes feed hashing or content addressing. Otherwise
// PreferredUnsortedEncOptions are used (sensible defaults).
type CBOR struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

var _ Codec = CBOR{}

// NewCBOR constructs a CBOR codec.
//   - Deterministic is true, uses CoreDetEncOptions (RFC 8949).
//   - Otherwise uses PreferredUnsortedEncOptions (smaller/faster defaults).
func NewCBOR(deterministic bool) (CBOR, error) {
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
	dm, err := (cbor.DecOptions{}).DecMode()
	if err != nil {
		return CBOR{}, err
	}
	return CBOR{enc: em, dec: dm}, nil
}

// MustCBOR is like NewCBOR but panics on error.
// Should not use for prod just handy for package-level variables in tests/examples.
func MustCBOR(deterministic bool) CBOR {
	c, err := NewCBOR(deterministic)
	if err != nil {
		panic(err)
	}
	return c
}

func (CBOR) ID() byte { return wire.CodecCBOR }

// Marshal encodes t as CBOR using the configured EncMode.
func (c CBOR) Marshal(t ucs.StringTable) ([]byte, error) {
	return c.enc.Marshal(map[int]string(t))
}

// Unmarshal decodes b into a table using the configured DecMode.
func (c CBOR) Unmarshal(b []byte) (ucs.StringTable, error) {
	var m map[int]string
	if err := c.dec.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return ucs.StringTable(m), nil
}
