// Package env aggregates many UCS files into one language environment, the
// way the engine overlays base-game and mod Locale folders at startup.
package env

import (
	"fmt"
	"io"
	"os"

	"github.com/relictools/ucs"
)

// Options tune environment loading.
// The zero value reads UTF-16 files strictly and forbids id replacement.
type Options struct {
	// AllowReplacement lets a later file overwrite an id loaded earlier.
	// Off by default: a collision is a *ucs.ConflictError naming both
	// values, which catches mods that stomp each other's strings.
	AllowReplacement bool

	// Codec options applied to every file read.
	Encoding string
	Lenient  bool

	// Logger receives per-file load diagnostics. Nil disables.
	Logger ucs.Logger
}

// Environment is a full translated language assembled from UCS files.
type Environment struct {
	table ucs.StringTable
	opts  Options
	log   ucs.Logger
}

func New(opts Options) *Environment {
	log := opts.Logger
	if log == nil {
		log = ucs.NopLogger{}
	}
	return &Environment{table: make(ucs.StringTable), opts: opts, log: log}
}

// Load creates an environment by recursively reading every UCS file for
// langCode under root. An empty langCode defaults to "en".
func Load(root, langCode string, opts Options) (*Environment, error) {
	e := New(opts)
	if err := e.ReadAll(root, langCode); err != nil {
		return nil, err
	}
	return e, nil
}

// Get returns the translation for id.
func (e *Environment) Get(id int) (string, bool) { return e.table.Get(id) }

// Len returns the number of loaded translations.
func (e *Environment) Len() int { return len(e.table) }

// Table returns the underlying string table. The caller must not mutate it
// while continuing to use the environment.
func (e *Environment) Table() ucs.StringTable { return e.table }

// Read decodes one UCS stream into the environment.
func (e *Environment) Read(r io.Reader) error {
	t, err := ucs.Decode(r, e.codecOptions())
	if err != nil {
		return err
	}
	return e.table.Merge(t, e.opts.AllowReplacement)
}

// ReadFile decodes one UCS file into the environment.
func (e *Environment) ReadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := e.Read(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	e.log.Debug("loaded ucs file", ucs.Fields{"path": path, "total": len(e.table)})
	return nil
}

// ReadAll reads every UCS file for langCode under root. An empty langCode
// defaults to "en".
func (e *Environment) ReadAll(root, langCode string) error {
	if langCode == "" {
		langCode = "en"
	}
	paths, err := Walk(root, langCode)
	if err != nil {
		return err
	}
	for _, p := range paths {
		if err := e.ReadFile(p); err != nil {
			return err
		}
	}
	return nil
}

func (e *Environment) codecOptions() ucs.Options {
	return ucs.Options{Encoding: e.opts.Encoding, Lenient: e.opts.Lenient, Logger: e.log}
}
