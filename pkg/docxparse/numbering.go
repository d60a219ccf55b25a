package docxparse

import (
	"strconv"

	"github.com/beevik/etree"

	"github.com/iyulab/undoc/pkg/model"
)

// listLevel is the decoded shape of one <w:lvl> entry: whether it's an
// ordered or unordered list level, and its start index.
type listLevel struct {
	Kind  model.ListKind
	Start int
}

// numbering resolves (numId, ilvl) pairs from word/numbering.xml, per
// spec.md §4.D's Lists section: "numbering.xml gives ordered-vs-unordered
// and start index."
type numbering struct {
	// abstractLevels[abstractNumId][ilvl]
	abstractLevels map[string]map[int]listLevel
	// numToAbstract[numId] -> abstractNumId
	numToAbstract map[string]string
}

func loadNumbering(data []byte) *numbering {
	n := &numbering{
		abstractLevels: map[string]map[int]listLevel{},
		numToAbstract:  map[string]string{},
	}
	if len(data) == 0 {
		return n
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return n
	}
	root := doc.Root()
	if root == nil {
		return n
	}

	for _, abs := range root.FindElements("abstractNum") {
		absID := abs.SelectAttrValue("abstractNumId", "")
		if absID == "" {
			continue
		}
		levels := map[int]listLevel{}
		for _, lvl := range abs.FindElements("lvl") {
			ilvl, err := strconv.Atoi(lvl.SelectAttrValue("ilvl", "0"))
			if err != nil {
				continue
			}
			kind := model.ListUnordered
			if fmtEl := lvl.FindElement("numFmt"); fmtEl != nil {
				switch fmtEl.SelectAttrValue("val", "") {
				case "bullet", "none":
					kind = model.ListUnordered
				default:
					kind = model.ListOrdered
				}
			}
			start := 1
			if startEl := lvl.FindElement("start"); startEl != nil {
				if s, err := strconv.Atoi(startEl.SelectAttrValue("val", "1")); err == nil {
					start = s
				}
			}
			levels[ilvl] = listLevel{Kind: kind, Start: start}
		}
		n.abstractLevels[absID] = levels
	}

	for _, num := range root.FindElements("num") {
		numID := num.SelectAttrValue("numId", "")
		if numID == "" {
			continue
		}
		if absRef := num.FindElement("abstractNumId"); absRef != nil {
			n.numToAbstract[numID] = absRef.SelectAttrValue("val", "")
		}
	}
	return n
}

// Lookup resolves a list context for the given numId/ilvl, or false if
// numbering.xml has no definition for them (the paragraph is then treated
// as an unordered list item at its own ilvl depth).
func (n *numbering) Lookup(numID string, ilvl int) (listLevel, bool) {
	absID, ok := n.numToAbstract[numID]
	if !ok {
		return listLevel{}, false
	}
	levels, ok := n.abstractLevels[absID]
	if !ok {
		return listLevel{}, false
	}
	lvl, ok := levels[ilvl]
	return lvl, ok
}
