package mdrender

import "strings"

// escapeChars is the set spec.md §4.G names: "\ ` * _ { } [ ] ( ) # + - . !".
var escapeChars = "\\`*_{}[]()#+-.!"

func isEscapable(r byte) bool {
	return strings.IndexByte(escapeChars, r) >= 0
}

func isWordByte(b byte) bool {
	return b == '_' || (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// escapeMarkdown backslash-escapes every Markdown-special character in s,
// except that a `*` or `_` is left alone when the character immediately
// before it is not a word character (or it is the first character) — this
// keeps bullet-like prefixes such as "*TAG:" or a parenthesized aside like
// "(*note)" from being mangled, matching spec.md §4.G's escaping rule.
func escapeMarkdown(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !isEscapable(c) {
			sb.WriteByte(c)
			continue
		}
		if c == '*' || c == '_' {
			prevIsWord := i > 0 && isWordByte(s[i-1])
			if !prevIsWord {
				sb.WriteByte(c)
				continue
			}
		}
		sb.WriteByte('\\')
		sb.WriteByte(c)
	}
	return sb.String()
}
