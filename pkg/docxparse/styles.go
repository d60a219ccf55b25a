package docxparse

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// outlineLevels maps a paragraph styleId to the heading outline level it
// implies (spec.md §4.D, resolved per DESIGN.md open question (b): Title
// maps to 1, even though Word itself treats Title as distinct from
// headings).
type outlineLevels map[string]int

// loadStyles parses word/styles.xml into a styleId -> outline level map.
// A style's own w:name is checked first ("heading N" / "title"); failing
// that, its w:basedOn chain is followed so a custom style derived from a
// heading style still produces a heading. A missing styles.xml yields an
// empty map (every paragraph then resolves to outline 0 unless its
// pStyle literally matches "HeadingN"/"Title").
func loadStyles(data []byte) outlineLevels {
	levels := outlineLevels{}
	if len(data) == 0 {
		return levels
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return levels
	}
	root := doc.Root()
	if root == nil {
		return levels
	}

	basedOn := map[string]string{}
	ownLevel := map[string]int{}

	for _, st := range root.FindElements("style") {
		id := st.SelectAttrValue("styleId", "")
		if id == "" {
			continue
		}
		if nameEl := st.FindElement("name"); nameEl != nil {
			name := strings.ToLower(strings.TrimSpace(nameEl.SelectAttrValue("val", "")))
			if lvl, ok := headingLevelFromName(name); ok {
				ownLevel[id] = lvl
			}
		}
		if b := st.FindElement("basedOn"); b != nil {
			if bv := b.SelectAttrValue("val", ""); bv != "" {
				basedOn[id] = bv
			}
		}
		// pStyle reference is itself the styleId, so Heading1/Title styleId
		// patterns (common in templates that never set a friendly w:name)
		// resolve directly too.
		if lvl, ok := headingLevelFromStyleID(id); ok {
			if _, already := ownLevel[id]; !already {
				ownLevel[id] = lvl
			}
		}
	}

	for id := range ownLevel {
		levels[id] = ownLevel[id]
	}
	for id := range basedOn {
		if _, ok := levels[id]; ok {
			continue
		}
		if lvl, ok := resolveChain(id, ownLevel, basedOn, map[string]bool{}); ok {
			levels[id] = lvl
		}
	}
	return levels
}

func resolveChain(id string, own map[string]int, basedOn map[string]string, seen map[string]bool) (int, bool) {
	if seen[id] {
		return 0, false
	}
	seen[id] = true
	if lvl, ok := own[id]; ok {
		return lvl, true
	}
	parent, ok := basedOn[id]
	if !ok {
		return 0, false
	}
	return resolveChain(parent, own, basedOn, seen)
}

func headingLevelFromName(name string) (int, bool) {
	if name == "title" {
		return 1, true
	}
	const prefix = "heading "
	if strings.HasPrefix(name, prefix) {
		if n, err := strconv.Atoi(strings.TrimSpace(name[len(prefix):])); err == nil && n >= 1 && n <= 6 {
			return n, true
		}
	}
	return 0, false
}

func headingLevelFromStyleID(id string) (int, bool) {
	if id == "Title" {
		return 1, true
	}
	const prefix = "Heading"
	if strings.HasPrefix(id, prefix) {
		if n, err := strconv.Atoi(strings.TrimSpace(id[len(prefix):])); err == nil && n >= 1 && n <= 6 {
			return n, true
		}
	}
	return 0, false
}

// OutlineLevel resolves a pStyle value to a heading outline level, or 0
// (body text) if unmapped.
func (o outlineLevels) OutlineLevel(styleVal string) int {
	if styleVal == "" {
		return 0
	}
	if lvl, ok := o[styleVal]; ok {
		return lvl
	}
	if lvl, ok := headingLevelFromStyleID(styleVal); ok {
		return lvl
	}
	return 0
}
