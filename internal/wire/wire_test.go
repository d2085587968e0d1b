package wire

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func mustDecode(t *testing.T, b []byte) (byte, []byte) {
	t.Helper()
	id, p, err := Decode(b)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	return id, p
}

func TestEnvelopeRoundTrip(t *testing.T) {
	cases := []struct {
		codecID byte
		payload []byte
	}{
		{CodecCBOR, nil},
		{CodecMsgpack, []byte("hello")},
		{7, []byte{0, 1, 2, 3, 4}},
	}
	for _, tc := range cases {
		enc := Encode(tc.codecID, tc.payload)
		id, p := mustDecode(t, enc)
		if id != tc.codecID {
			t.Fatalf("codec id mismatch: got %d want %d", id, tc.codecID)
		}
		if !bytes.Equal(p, tc.payload) {
			t.Fatalf("payload mismatch: got %x want %x", p, tc.payload)
		}
	}
}

func TestEnvelopeRejectsTrailingBytes(t *testing.T) {
	enc := Encode(CodecCBOR, []byte("x"))
	enc = append(enc, 0xDE, 0xAD) // add junk
	if _, _, err := Decode(enc); err == nil {
		t.Fatalf("expected error on trailing bytes")
	}
}

func TestEnvelopeCorruptHeadersAndLengths(t *testing.T) {
	enc := Encode(CodecCBOR, []byte("abc"))

	// bad magic
	badMagic := append([]byte(nil), enc...)
	badMagic[0] = 'X'
	if _, _, err := Decode(badMagic); err == nil {
		t.Fatalf("expected error on bad magic")
	}

	// wrong version
	badVer := append([]byte(nil), enc...)
	badVer[4] = version + 1
	if _, _, err := Decode(badVer); err == nil {
		t.Fatalf("expected error on bad version")
	}

	// plen too large (announce more than available)
	tooLong := append([]byte(nil), enc...)
	binary.BigEndian.PutUint32(tooLong[6:10], uint32(len("abc")+1))
	if _, _, err := Decode(tooLong); err == nil {
		t.Fatalf("expected error on plen beyond buffer")
	}

	// truncated buffer
	trunc := enc[:len(enc)-1]
	if _, _, err := Decode(trunc); err == nil {
		t.Fatalf("expected error on truncated buffer")
	}

	// too short for any header
	if _, _, err := Decode(enc[:5]); err == nil {
		t.Fatalf("expected error on short buffer")
	}
}

func TestEnvelopeZeroCopyPayload(t *testing.T) {
	enc := Encode(CodecMsgpack, []byte("Z"))
	_, p := mustDecode(t, enc)
	if len(p) != 1 {
		t.Fatalf("unexpected payload len")
	}
	// mutate payload slice. should mutate underlying enc bytes (zero-copy)
	p[0] = 'Q'
	_, p2 := mustDecode(t, enc)
	if p2[0] != 'Q' {
		t.Fatalf("expected zero-copy slice into enc buffer")
	}
}
