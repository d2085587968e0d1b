// Package textenc resolves named text encodings for UCS files.
//
// The engine ships UCS files as UTF-16 little-endian with a BOM, but
// community tools and older titles produced single-byte code pages, so the
// codec takes the encoding by name instead of hard-coding one.
package textenc

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
)

// ErrUnknown is wrapped by Lookup for unrecognized names.
var ErrUnknown = errors.New("textenc: unknown encoding")

var encodings = map[string]encoding.Encoding{
	"utf-8":        unicode.UTF8,
	"utf-8-sig":    unicode.UTF8BOM,
	"utf-16":       unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
	"utf-16le":     unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"utf-16be":     unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	"windows-1252": charmap.Windows1252,
	"latin-1":      charmap.ISO8859_1,
	"shift-jis":    japanese.ShiftJIS,
}

var aliases = map[string]string{
	"utf8":       "utf-8",
	"utf16":      "utf-16",
	"utf16le":    "utf-16le",
	"utf16be":    "utf-16be",
	"cp1252":     "windows-1252",
	"iso-8859-1": "latin-1",
	"sjis":       "shift-jis",
	"shift_jis":  "shift-jis",
}

// Lookup resolves a case-insensitive encoding name to its codec. Encoders
// obtained from the result are strict: a rune outside the encoding's
// repertoire surfaces as an error, never a silent substitution.
func Lookup(name string) (encoding.Encoding, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if canon, ok := aliases[key]; ok {
		key = canon
	}
	enc, ok := encodings[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	return enc, nil
}

// Names returns the canonical encoding names, sorted.
func Names() []string {
	out := make([]string, 0, len(encodings))
	for name := range encodings {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
