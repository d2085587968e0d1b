package ucs

import (
	"errors"
	"io"
	"strconv"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/relictools/ucs/textenc"
)

// Encode writes t to w in canonical form: one line per entry, ascending id,
// values escaped so that Decode(Encode(t)) == t. An empty table produces no
// output.
//
// The sink is never closed or flushed beyond the encoder's own transform;
// buffering and close belong to the caller.
func Encode(w io.Writer, t StringTable, opts Options) error {
	opts = opts.withDefaults()
	enc, err := textenc.Lookup(opts.Encoding)
	if err != nil {
		return err
	}

	tw := transform.NewWriter(w, enc.NewEncoder())
	line := 0
	for _, id := range t.IDs() {
		line++
		if id < 0 {
			return &FormatError{Line: line, Content: strconv.Itoa(id), Reason: "negative id"}
		}
		s := strconv.Itoa(id) + "\t" + escapeValue(t[id]) + "\n"
		if _, err := tw.Write([]byte(s)); err != nil {
			return encodeErr(opts.Encoding, line, err)
		}
	}
	if err := tw.Close(); err != nil {
		return encodeErr(opts.Encoding, line, err)
	}
	return nil
}

// replacementError matches x/text's repertoire errors: a rune with no
// representation in the target encoding.
type replacementError interface {
	Replacement() byte
}

// encodeErr separates unmappable characters from sink IO failures.
func encodeErr(encName string, line int, err error) error {
	var rerr replacementError
	if errors.As(err, &rerr) || errors.Is(err, encoding.ErrInvalidUTF8) {
		return &EncodingError{Encoding: encName, Line: line, Err: err}
	}
	return err
}
