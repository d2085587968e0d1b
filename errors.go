package ucs

import (
	"fmt"
)

// FormatError reports a line that does not conform to the UCS grammar:
// missing separator, invalid or duplicate id, or a bad escape sequence.
// Line is 1-based; Content is the raw line as decoded.
type FormatError struct {
	Line    int
	Content string
	Reason  string
	Err     error // optional underlying cause (e.g. strconv)
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ucs: line %d: %s: %v (%q)", e.Line, e.Reason, e.Err, e.Content)
	}
	return fmt.Sprintf("ucs: line %d: %s (%q)", e.Line, e.Reason, e.Content)
}

func (e *FormatError) Unwrap() error { return e.Err }

// EncodingError reports bytes that cannot be decoded under the selected
// text encoding, or a rune with no representation in it. Line is 1-based
// when the offending line is known, 0 otherwise.
type EncodingError struct {
	Encoding string
	Line     int
	Err      error
}

func (e *EncodingError) Error() string {
	switch {
	case e.Line > 0 && e.Err != nil:
		return fmt.Sprintf("ucs: line %d: encoding %q: %v", e.Line, e.Encoding, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("ucs: line %d: undecodable bytes for encoding %q", e.Line, e.Encoding)
	case e.Err != nil:
		return fmt.Sprintf("ucs: encoding %q: %v", e.Encoding, e.Err)
	default:
		return fmt.Sprintf("ucs: encoding %q: unmappable input", e.Encoding)
	}
}

func (e *EncodingError) Unwrap() error { return e.Err }

// ConflictError reports an id that would be overwritten with a different
// value during a merge that forbids replacement.
type ConflictError struct {
	ID       int
	Existing string
	Incoming string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("ucs: id %d exists: refusing to replace %q with %q", e.ID, e.Existing, e.Incoming)
}
