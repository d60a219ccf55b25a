package cleanup

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// bulletGlyphs standardizes common bullet-point runes to a plain "-",
// per spec.md §4.I stage 1.
var bulletGlyphs = map[rune]rune{
	'•': '-',
	'▪': '-',
	'●': '-',
}

var smartQuotes = map[rune]rune{
	'‘': '\'', // left single quote
	'’': '\'', // right single quote
	'“': '"',  // left double quote
	'”': '"',  // right double quote
}

func isZeroWidth(r rune) bool {
	return r == '\uFEFF' || (r >= '\u200B' && r <= '\u200D')
}

// normalizeStrings applies Unicode NFC, standardizes bullet glyphs and
// smart quotes, and strips zero-width characters, per spec.md §4.I stage
// 1. This stage runs under every preset.
func normalizeStrings(s string) string {
	s = norm.NFC.String(s)

	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if isZeroWidth(r) {
			continue
		}
		if repl, ok := bulletGlyphs[r]; ok {
			sb.WriteRune(repl)
			continue
		}
		if repl, ok := smartQuotes[r]; ok {
			sb.WriteRune(repl)
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
