// Package ucs reads and writes Relic UCS language files: the plain-text
// string-table format the engine uses for localization. Each line maps an
// integer string id to a translated value.
//
// Components:
//   - StringTable: the in-memory id -> text mapping.
//   - Decode / Encode: the line-oriented codec. Encode orders entries by
//     ascending id and escapes control characters so decode(encode(t)) == t.
//   - textenc: named text-encoding selection (UCS files are UTF-16 by
//     convention, but legacy code pages appear in the wild).
//   - env: aggregates many UCS files into one language environment.
//   - snapshot: a binary sidecar form of a decoded table for fast reloads.
//
// Line grammar:
//
//	<id> TAB <value> NL
//
// with backslash escapes (\n, \t, \r, \\) inside values. Strict mode rejects
// anything else; lenient mode skips malformed lines and lets later duplicate
// ids win, which matches files produced by older tools.
package ucs
