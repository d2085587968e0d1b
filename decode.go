package ucs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/transform"

	"github.com/relictools/ucs/textenc"
)

// maxLineBytes bounds a single decoded line. Real UCS values are short; the
// cap only guards against unframed binary input fed to the decoder.
const maxLineBytes = 4 << 20

// Decode reads a UCS stream into a StringTable.
//
// Strict mode (default) fails on the first malformed line, duplicate id, or
// undecodable byte sequence. Lenient mode skips malformed lines, lets later
// duplicates win, and keeps U+FFFD where bytes could not be decoded. Blank
// lines are skipped in both modes, and both LF and CRLF endings are accepted.
//
// The reader is consumed but never closed.
func Decode(r io.Reader, opts Options) (StringTable, error) {
	opts = opts.withDefaults()
	enc, err := textenc.Lookup(opts.Encoding)
	if err != nil {
		return nil, err
	}

	out := make(StringTable)
	sc := bufio.NewScanner(transform.NewReader(r, enc.NewDecoder()))
	sc.Buffer(make([]byte, 0, 64<<10), maxLineBytes)

	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := strings.TrimSuffix(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		// x/text decoders substitute U+FFFD rather than failing, so a
		// replacement rune on the line is the undecodable-input signal.
		if !opts.Lenient && strings.ContainsRune(line, utf8.RuneError) {
			return nil, &EncodingError{Encoding: opts.Encoding, Line: lineNum}
		}
		id, value, perr := parseLine(lineNum, line, opts.Lenient)
		if perr != nil {
			if opts.Lenient {
				opts.Logger.Warn("skipping malformed line", Fields{"line": lineNum, "err": perr})
				continue
			}
			return nil, perr
		}
		if _, dup := out[id]; dup {
			if !opts.Lenient {
				return nil, &FormatError{Line: lineNum, Content: line, Reason: "duplicate id"}
			}
			opts.Logger.Warn("duplicate id, keeping later value", Fields{"line": lineNum, "id": id})
		}
		out[id] = value
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ucs: read: %w", err)
	}
	return out, nil
}

// parseLine splits one non-blank line into (id, value). Strict mode demands
// a single TAB separator; lenient mode accepts any whitespace run and trims
// around it, matching files written by older tools.
func parseLine(lineNum int, line string, lenient bool) (int, string, error) {
	var idPart, rawValue string
	if lenient {
		trimmed := strings.TrimLeft(line, " \t")
		if i := strings.IndexAny(trimmed, " \t"); i >= 0 {
			idPart = trimmed[:i]
			rawValue = strings.TrimLeft(trimmed[i:], " \t")
		} else {
			idPart = trimmed
		}
	} else {
		i := strings.IndexByte(line, '\t')
		if i < 0 {
			return 0, "", &FormatError{Line: lineNum, Content: line, Reason: "missing separator"}
		}
		idPart = line[:i]
		rawValue = line[i+1:]
	}

	id, err := strconv.ParseUint(idPart, 10, 63)
	if err != nil {
		return 0, "", &FormatError{Line: lineNum, Content: line, Reason: "invalid id", Err: err}
	}
	value, err := unescapeValue(rawValue, lenient)
	if err != nil {
		return 0, "", &FormatError{Line: lineNum, Content: line, Reason: "bad escape", Err: err}
	}
	return int(id), value, nil
}
