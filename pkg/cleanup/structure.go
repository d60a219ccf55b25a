package cleanup

import (
	"regexp"
	"strings"
)

var allWhitespaceTableRow = regexp.MustCompile(`^\|(\s*\|)+$`)

// filterStructure removes blank-content table rows (every cell whitespace
// only), per spec.md §4.I stage 3 ("remove empty paragraphs and tables whose
// cells are all whitespace"). Paragraph emptiness itself is already
// handled upstream by mdrender skipping zero-text blocks; this stage
// only has to deal with the table case, which survives at the text
// level as an all-pipes row.
func filterStructure(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if allWhitespaceTableRow.MatchString(strings.TrimSpace(l)) {
			continue
		}
		out = append(out, l)
	}
	return strings.Join(out, "\n")
}
