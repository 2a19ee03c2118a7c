// Package render provides output renderers for spec-sheet documents.
// This file implements text sanitization: the PDF canvas only supports
// the ASCII subset of the core fonts, so every string is normalized
// before it reaches a draw call.
package render

import "strings"

// asciiReplacements substitutes common typographic punctuation and
// symbols with ASCII equivalents before the non-ASCII strip.
var asciiReplacements = []struct {
	from string
	to   string
}{
	{"™", "(TM)"}, // trademark
	{"®", "(R)"},  // registered
	{"©", "(C)"},  // copyright
	{"–", "-"},    // en dash
	{"—", "--"},   // em dash
	{"‘", "'"},    // left single quote
	{"’", "'"},    // right single quote
	{"“", "\""},   // left double quote
	{"”", "\""},   // right double quote
	{"…", "..."},  // ellipsis
}

// Sanitize makes a string representable in the canvas character set:
// known typographic code points are substituted, any remaining non-ASCII
// rune becomes a space, and whitespace runs collapse to a single space.
// Sanitize is idempotent.
func Sanitize(text string) string {
	for _, r := range asciiReplacements {
		text = strings.ReplaceAll(text, r.from, r.to)
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, ch := range text {
		if ch < 128 {
			b.WriteRune(ch)
		} else {
			b.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
