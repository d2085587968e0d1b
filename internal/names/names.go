// Package names sanitizes strings destined for the file system.
package names

import "regexp"

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_\- .]`)

// FileSafe strips characters that are unsafe in file names, substituting
// replacement. The replacement is sanitized first, so an unsafe replacement
// degrades to plain removal.
func FileSafe(s, replacement string) string {
	replacement = unsafeChars.ReplaceAllString(replacement, "")
	return unsafeChars.ReplaceAllString(s, replacement)
}
