// Package runmerge implements the CJK-aware adjacent-run merging spec.md
// §4.D and §4.F both require, and §9 calls out as a rendering-time
// decision made during run merging. Used by both the DOCX and PPTX
// parsers since DrawingML paragraphs/runs mirror WordprocessingML runs.
package runmerge

import (
	"strings"
	"unicode"

	"golang.org/x/text/width"

	"github.com/iyulab/undoc/pkg/model"
)

// Merge concatenates adjacent runs that share identical style and
// hyperlink target, inserting a single space at a CJK/ASCII boundary when
// neither side already supplies whitespace. Merging is stable:
// left-to-right, as spec.md §5 requires.
func Merge(runs []model.Run) []model.Run {
	if len(runs) == 0 {
		return runs
	}
	out := make([]model.Run, 0, len(runs))
	out = append(out, runs[0])
	for _, r := range runs[1:] {
		last := &out[len(out)-1]
		if sameStyle(last, &r) {
			last.Text = joinWithCJKSpacing(last.Text, r.Text)
			continue
		}
		out = append(out, r)
	}
	return out
}

func sameStyle(a, b *model.Run) bool {
	if a.Style != b.Style {
		return false
	}
	if (a.Hyperlink == nil) != (b.Hyperlink == nil) {
		return false
	}
	if a.Hyperlink != nil && b.Hyperlink != nil && *a.Hyperlink != *b.Hyperlink {
		return false
	}
	return true
}

// joinWithCJKSpacing concatenates left and right, inserting a single
// space at the boundary when one side ends/starts with a CJK character
// and the other starts/ends with an ASCII letter or digit, unless
// whitespace is already present on either side of the boundary.
func joinWithCJKSpacing(left, right string) string {
	if left == "" {
		return right
	}
	if right == "" {
		return left
	}
	leftRunes := []rune(left)
	rightRunes := []rune(right)
	lastCh := leftRunes[len(leftRunes)-1]
	firstCh := rightRunes[0]

	if unicode.IsSpace(lastCh) || unicode.IsSpace(firstCh) {
		return left + right
	}

	needsSpace := (isCJK(lastCh) && isASCIIAlnum(firstCh)) ||
		(isASCIIAlnum(lastCh) && isCJK(firstCh))
	if needsSpace {
		var sb strings.Builder
		sb.Grow(len(left) + len(right) + 1)
		sb.WriteString(left)
		sb.WriteByte(' ')
		sb.WriteString(right)
		return sb.String()
	}
	return left + right
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// isCJK reports whether r belongs to a CJK-ish block: Han, Hiragana,
// Katakana, or Hangul. golang.org/x/text/width's East-Asian-Width
// classification is trusted directly for wide/fullwidth runes (covering
// most Han, Hiragana, Katakana, Hangul syllables, and fullwidth forms
// without hand-rolling a Unicode range table); CJK runes that are not
// wide, such as halfwidth Katakana/Hangul forms and conjoining Hangul
// jamo, fall through to the script-based check below instead.
func isCJK(r rune) bool {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return true
	}
	return unicode.Is(unicode.Hangul, r) || unicode.Is(unicode.Han, r) || unicode.Is(unicode.Hiragana, r) || unicode.Is(unicode.Katakana, r)
}
