package env

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/relictools/ucs/internal/names"
)

// Lookup is anything that resolves a string id. Both *Environment and a bare
// ucs.StringTable qualify.
type Lookup interface {
	Get(id int) (string, bool)
}

const (
	maxTitleLen  = 64
	maxTitleTrim = 8
)

// ClipTitle renames an audio-clip path whose file stem is a string id into a
// readable, file-safe title of the form "<translated text> ~ Clip <id><ext>".
// Returns path unchanged when the stem is not an id or has no translation.
//
// Some shipped speech files carry a stray trailing 'b' after the id; it is
// stripped before parsing.
func ClipTitle(l Lookup, path string) string {
	dir, file := filepath.Split(path)
	ext := filepath.Ext(file)
	stem := strings.TrimSuffix(file, ext)
	stem = strings.TrimSuffix(stem, "b")

	id, err := strconv.Atoi(stem)
	if err != nil || id < 0 {
		return path
	}
	title, ok := l.Get(id)
	if !ok || title == "" {
		return path
	}

	title = names.FileSafe(trimTitle(title), "")
	return filepath.Join(dir, title+" ~ Clip "+strconv.Itoa(id)+ext)
}

// trimTitle shortens long lines to roughly maxTitleLen runes, preferring the
// first sentence boundary, then a nearby word boundary, then a hard cut.
func trimTitle(s string) string {
	runes := []rune(s)
	for _, p := range []rune{'.', '!', '?'} {
		if len(runes) <= maxTitleLen {
			return string(runes)
		}
		for i, r := range runes {
			if r == p {
				runes = runes[:i+1]
				break
			}
		}
	}
	if len(runes) <= maxTitleLen {
		return string(runes)
	}
	cut := maxTitleLen
	for i := maxTitleLen - 1; i >= maxTitleLen-maxTitleTrim; i-- {
		if runes[i] == ' ' {
			cut = i
			break
		}
	}
	return string(runes[:cut]) + "..."
}
