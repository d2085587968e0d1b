package ucs

import "os"

// DefaultEncoding is used when Options.Encoding is empty. UCS files are
// UTF-16 little-endian with a BOM by convention.
const DefaultEncoding = "utf-16"

// Options tune a single Decode or Encode call. The zero value is ready to
// use: UTF-16 text, strict parsing, no logging.
type Options struct {
	// Encoding names the text encoding of the byte stream. See
	// textenc.Lookup for the recognized names. Empty means DefaultEncoding.
	Encoding string

	// Lenient switches Decode from fail-fast to best-effort: malformed
	// lines are skipped, later duplicate ids win, and undecodable bytes
	// stay as U+FFFD. Encode ignores it.
	Lenient bool

	// Logger receives skip diagnostics in lenient mode. Nil disables.
	Logger Logger
}

func (o Options) withDefaults() Options {
	o.Encoding = coalesce(o.Encoding, DefaultEncoding)
	o.Logger = coalesce[Logger](o.Logger, NopLogger{})
	return o
}

// ReadFile decodes the UCS file at path.
func ReadFile(path string, opts Options) (StringTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f, opts)
}

// WriteFile encodes t to the file at path, creating or truncating it.
func WriteFile(path string, t StringTable, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, t, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
