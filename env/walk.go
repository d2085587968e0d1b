package env

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// localeNames maps a language code to the folder name the engine uses under
// Locale/.
var localeNames = map[string]string{
	"en": "English",
	"fr": "French",
	"de": "German",
	"it": "Italian",
	"es": "Spanish",
}

// LocaleName resolves a language code to its Locale folder name.
func LocaleName(langCode string) (string, bool) {
	name, ok := localeNames[strings.ToLower(langCode)]
	return name, ok
}

// Walk returns every .ucs file under root, recursively. When langCode
// resolves to a known locale folder, only files inside a Locale/<name> tree
// are returned; unknown codes apply no filter, which matches loose mod
// layouts that keep a single language at the top level.
func Walk(root, langCode string) ([]string, error) {
	localeName, filter := LocaleName(langCode)
	var out []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".ucs") {
			return nil
		}
		if filter && !(strings.Contains(path, "Locale") && strings.Contains(path, localeName)) {
			return nil
		}
		out = append(out, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
