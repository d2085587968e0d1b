// Package snapshot persists decoded string tables in a compact binary form.
// Modding tools re-open the same UCS files constantly; a snapshot sidecar
// skips the text parse and charset transform on reload.
//
// The on-disk form is a small envelope (see internal/wire) around a payload
// produced by a pluggable Codec. The envelope records which codec wrote the
// payload, so Read needs no configuration.
package snapshot

import (
	"fmt"
	"io"

	"github.com/relictools/ucs"
	"github.com/relictools/ucs/internal/wire"
)

// Codec serializes a StringTable payload inside the snapshot envelope.
type Codec interface {
	// ID is the envelope byte identifying this codec on disk.
	ID() byte
	Marshal(ucs.StringTable) ([]byte, error)
	Unmarshal([]byte) (ucs.StringTable, error)
}

// Write frames t with codec c and writes it to w. The sink is not closed.
func Write(w io.Writer, t ucs.StringTable, c Codec) error {
	payload, err := c.Marshal(t)
	if err != nil {
		return fmt.Errorf("snapshot: marshal: %w", err)
	}
	_, err = w.Write(wire.Encode(c.ID(), payload))
	return err
}

// Read consumes a snapshot from r.
func Read(r io.Reader) (ucs.StringTable, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	id, payload, err := wire.Decode(b)
	if err != nil {
		return nil, err
	}
	c, err := codecByID(id)
	if err != nil {
		return nil, err
	}
	t, err := c.Unmarshal(payload)
	if err != nil {
		return nil, fmt.Errorf("snapshot: unmarshal: %w", err)
	}
	return t, nil
}

func codecByID(id byte) (Codec, error) {
	switch id {
	case wire.CodecCBOR:
		c, err := NewCBOR(false)
		if err != nil {
			return nil, err
		}
		return c, nil
	case wire.CodecMsgpack:
		return Msgpack{}, nil
	default:
		return nil, fmt.Errorf("snapshot: unknown codec id %d: %w", id, wire.ErrCorrupt)
	}
}
