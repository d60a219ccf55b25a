package cleanup

import (
	"regexp"
	"strings"
)

var runOfBlankLines = regexp.MustCompile(`\n{4,}`)

// finalNormalize collapses 3+ blank lines to 2, strips trailing
// whitespace per line, and ensures exactly one trailing newline, per
// spec.md §4.I stage 4. This stage runs under every preset.
func finalNormalize(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t")
	}
	s = strings.Join(lines, "\n")

	s = runOfBlankLines.ReplaceAllString(s, "\n\n\n")
	s = strings.TrimRight(s, "\n")
	return s + "\n"
}
