package env

import (
	"strings"
	"testing"

	"github.com/relictools/ucs"
)

func TestClipTitleBasic(t *testing.T) {
	tab := ucs.StringTable{511: "Hello there."}
	got := ClipTitle(tab, "VO/511.fda")
	want := "VO/Hello there. ~ Clip 511.fda"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestClipTitleStraysTrailingB(t *testing.T) {
	tab := ucs.StringTable{511: "Hello there."}
	got := ClipTitle(tab, "VO/511b.fda")
	want := "VO/Hello there. ~ Clip 511.fda"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestClipTitleFallbacks(t *testing.T) {
	tab := ucs.StringTable{511: "Hello there.", 600: ""}
	for _, path := range []string{
		"VO/narration.fda", // stem is not an id
		"VO/999.fda",       // no translation
		"VO/600.fda",       // empty translation
		"VO/.fda",          // empty stem
	} {
		if got := ClipTitle(tab, path); got != path {
			t.Fatalf("expected %q unchanged, got %q", path, got)
		}
	}
}

func TestClipTitleStripsUnsafeChars(t *testing.T) {
	tab := ucs.StringTable{7: `Say "hello", soldier!`}
	got := ClipTitle(tab, "7.fda")
	want := "Say hello soldier ~ Clip 7.fda"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestClipTitleTrimsAtSentence(t *testing.T) {
	long := "First order given. " + strings.Repeat("Then a very long narration continues on. ", 5)
	tab := ucs.StringTable{8: long}
	got := ClipTitle(tab, "8.fda")
	want := "First order given. ~ Clip 8.fda"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestClipTitleHardTrim(t *testing.T) {
	tab := ucs.StringTable{9: strings.Repeat("word ", 40)} // no sentence punctuation
	got := ClipTitle(tab, "9.fda")
	if len(got) > len("9.fda")+maxTitleLen+len(" ~ Clip 9")+3 {
		t.Fatalf("title not trimmed: %q", got)
	}
	if !strings.Contains(got, "... ~ Clip 9.fda") {
		t.Fatalf("expected ellipsis before clip suffix, got %q", got)
	}
}

func TestClipTitleEnvironmentLookup(t *testing.T) {
	e := New(Options{Encoding: "utf-8"})
	if err := e.Read(strings.NewReader("12\tAttack now\n")); err != nil {
		t.Fatalf("Read: %v", err)
	}
	got := ClipTitle(e, "12.fda")
	want := "Attack now ~ Clip 12.fda"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}
