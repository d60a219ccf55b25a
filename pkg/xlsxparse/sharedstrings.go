package xlsxparse

import (
	"strings"

	"github.com/beevik/etree"
)

const sharedStringsPart = "xl/sharedStrings.xml"

// sharedStrings is the XLSX string-interning table (spec.md glossary),
// loaded up front and indexed once; each shared-string cell looks its
// text up here by index (spec.md §9).
type sharedStrings []string

func loadSharedStrings(data []byte) sharedStrings {
	if len(data) == 0 {
		return nil
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil
	}
	root := doc.Root()
	if root == nil {
		return nil
	}
	items := root.FindElements("si")
	out := make(sharedStrings, len(items))
	for i, si := range items {
		out[i] = concatText(si)
	}
	return out
}

// concatText concatenates every <t> descendant's text, which handles both
// the plain <si><t>text</t></si> shape and the rich-text
// <si><r><t>a</t></r><r><t>b</t></r></si> shape.
func concatText(si *etree.Element) string {
	var sb strings.Builder
	var walk func(e *etree.Element)
	walk = func(e *etree.Element) {
		for _, child := range e.ChildElements() {
			if child.Tag == "t" {
				sb.WriteString(child.Text())
				continue
			}
			walk(child)
		}
	}
	walk(si)
	return sb.String()
}

// At returns the string at idx, or "" if idx is out of range — a
// dangling shared-string index is treated the same way an unknown
// resource reference is: absorbed with a sensible default rather than
// failing the whole sheet.
func (s sharedStrings) At(idx int) string {
	if idx < 0 || idx >= len(s) {
		return ""
	}
	return s[idx]
}
