package xlsxparse

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

const stylesPart = "xl/styles.xml"

// builtinDateFormatIDs are the well-known ECMA-376 numFmtId values that
// mean "date" or "date+time" without needing a formatCode lookup.
var builtinDateFormatIDs = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 18: true, 19: true,
	20: true, 21: true, 22: true, 45: true, 46: true, 47: true,
}

// cellStyles resolves a cell's style index (its `s` attribute) to whether
// that style's number format is a date format, per spec.md §4.E.
type cellStyles struct {
	// xfNumFmtID[cellXfs index] -> numFmtId
	xfNumFmtID []int
	// customDateFmt[numFmtId] -> true, for custom formatCodes that look
	// like a date/time pattern
	customDateFmt map[int]bool
}

func loadCellStyles(data []byte) *cellStyles {
	cs := &cellStyles{customDateFmt: map[int]bool{}}
	if len(data) == 0 {
		return cs
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return cs
	}
	root := doc.Root()
	if root == nil {
		return cs
	}

	if numFmts := root.FindElement("numFmts"); numFmts != nil {
		for _, nf := range numFmts.FindElements("numFmt") {
			id, err := strconv.Atoi(nf.SelectAttrValue("numFmtId", ""))
			if err != nil {
				continue
			}
			code := nf.SelectAttrValue("formatCode", "")
			if looksLikeDateFormat(code) {
				cs.customDateFmt[id] = true
			}
		}
	}

	if cellXfs := root.FindElement("cellXfs"); cellXfs != nil {
		for _, xf := range cellXfs.FindElements("xf") {
			id, err := strconv.Atoi(xf.SelectAttrValue("numFmtId", "0"))
			if err != nil {
				id = 0
			}
			cs.xfNumFmtID = append(cs.xfNumFmtID, id)
		}
	}
	return cs
}

// looksLikeDateFormat reports whether a custom formatCode contains date
// or time tokens (y/m/d/h/s outside of a quoted literal and outside a
// [bracketed] section such as a colour code), the same heuristic
// spreadsheet-reading tools use since formatCode has no separate
// "is a date" flag.
func looksLikeDateFormat(code string) bool {
	lower := strings.ToLower(code)
	inLiteral := false
	inBracket := false
	for _, r := range lower {
		if r == '"' && !inBracket {
			inLiteral = !inLiteral
			continue
		}
		if inLiteral {
			continue
		}
		if r == '[' {
			inBracket = true
			continue
		}
		if r == ']' {
			inBracket = false
			continue
		}
		if inBracket {
			continue
		}
		switch r {
		case 'y', 'd', 'h', 's':
			return true
		case 'm':
			// "m" alone is ambiguous (minutes vs month) but in practice
			// both imply a date/time format, so either reading is fine.
			return true
		}
	}
	return false
}

// IsDateStyle reports whether the style at cellXfs index styleIdx formats
// its value as a date.
func (cs *cellStyles) IsDateStyle(styleIdx int) bool {
	if styleIdx < 0 || styleIdx >= len(cs.xfNumFmtID) {
		return false
	}
	numFmtID := cs.xfNumFmtID[styleIdx]
	if builtinDateFormatIDs[numFmtID] {
		return true
	}
	return cs.customDateFmt[numFmtID]
}
