package ucs

import (
	"errors"
	"fmt"
	"strings"
)

var errTrailingBackslash = errors.New("trailing backslash")

// escapeValue makes a value single-line safe: backslash, newline, tab and
// carriage return become two-character escapes.
func escapeValue(s string) string {
	if !strings.ContainsAny(s, "\\\n\t\r") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// unescapeValue reverses escapeValue. In strict mode an unknown escape or a
// lone trailing backslash is an error; lenient mode keeps them literally,
// which tolerates files written by tools that never escaped at all.
func unescapeValue(s string, lenient bool) (string, error) {
	if !strings.ContainsRune(s, '\\') {
		return s, nil
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		if i+1 >= len(s) {
			if lenient {
				b.WriteByte('\\')
				break
			}
			return "", errTrailingBackslash
		}
		i++
		switch s[i] {
		case '\\':
			b.WriteByte('\\')
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		default:
			if !lenient {
				return "", fmt.Errorf("unknown escape \\%c", s[i])
			}
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String(), nil
}
