package cleanup

import (
	"regexp"
	"strings"
)

var (
	pageNumberLine = regexp.MustCompile(`^\s*\d+\s*$`)
	pageOfPageLine = regexp.MustCompile(`(?i)^\s*page\s+\d+\s+of\s+\d+\s*$`)
	tocDotLeader   = regexp.MustCompile(`\.{3,}\s*\d*\s*$`)
	structuralLine = regexp.MustCompile(`^[-=*_>|#\s]+$`)
)

// cleanLines drops page-number lines, "Page N of M" lines, table-of-
// contents dot-leader lines, and running header/footer lines — a short
// line repeated 3 or more times across the whole document — per spec.md
// §4.I stage 2.
func cleanLines(s string) string {
	lines := strings.Split(s, "\n")

	counts := map[string]int{}
	for _, l := range lines {
		t := strings.TrimSpace(l)
		if t == "" || len(t) > 80 || structuralLine.MatchString(t) {
			continue
		}
		counts[t]++
	}

	out := make([]string, 0, len(lines))
	for _, l := range lines {
		t := strings.TrimSpace(l)
		switch {
		case pageNumberLine.MatchString(l):
			continue
		case pageOfPageLine.MatchString(l):
			continue
		case t != "" && tocDotLeader.MatchString(t):
			continue
		case t != "" && counts[t] >= 3:
			continue
		}
		out = append(out, l)
	}
	return strings.Join(out, "\n")
}
