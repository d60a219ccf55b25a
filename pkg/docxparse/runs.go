package docxparse

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/iyulab/undoc/internal/linebreak"
	"github.com/iyulab/undoc/pkg/model"
)

// decodeRunProps reads a <w:rPr> into a RunStyle, per spec.md §4.D:
// <w:b/> bold (but w:val="0"/"off"/"false" is off), <w:i/> italic,
// <w:u w:val!="none"/> underline, <w:strike/> strike. A bare rStyle of
// "Hyperlink" does not by itself add a hyperlink — that's carried by the
// enclosing <w:hyperlink> ancestor — but it does flag the run visually, so
// we fold it into Underline the way Word's default Hyperlink style does,
// matching what a reader sees rather than the raw style name.
func decodeRunProps(rPr *etree.Element) model.RunStyle {
	var s model.RunStyle
	if rPr == nil {
		return s
	}
	s.Bold = boolProp(rPr, "b")
	s.Italic = boolProp(rPr, "i")
	s.Strike = boolProp(rPr, "strike")
	if u := rPr.FindElement("u"); u != nil {
		val := u.SelectAttrValue("val", "single")
		s.Underline = val != "none"
	}
	if vertAlign := rPr.FindElement("vertAlign"); vertAlign != nil {
		switch vertAlign.SelectAttrValue("val", "") {
		case "superscript":
			s.Superscript = true
		case "subscript":
			s.Subscript = true
		}
	}
	if styleEl := rPr.FindElement("rStyle"); styleEl != nil {
		if strings.EqualFold(styleEl.SelectAttrValue("val", ""), "Hyperlink") {
			s.Underline = true
		}
	}
	return s
}

// boolProp implements the tri-state OOXML boolean toggle: the bare
// element means true, w:val of "0"/"off"/"false" means false, any other
// w:val means true, and absence of the element is the default — which for
// toggle properties like w:b/w:i/w:strike is "off".
func boolProp(rPr *etree.Element, local string) bool {
	el := rPr.FindElement(local)
	if el == nil {
		return false
	}
	val := el.SelectAttr("val")
	if val == nil {
		return true
	}
	switch strings.ToLower(val.Value) {
	case "0", "off", "false":
		return false
	default:
		return true
	}
}

// decodeRun decodes a single <w:r> into one or more Runs: w:t contributes
// literal text, w:tab becomes U+0009, and w:br/w:cr split the run list
// since spec.md invariant 3 forbids a newline inside a single Run's text.
func decodeRun(r *etree.Element, hyperlink *string) []model.Run {
	style := decodeRunProps(r.FindElement("rPr"))
	var runs []model.Run
	var sb strings.Builder

	flush := func() {
		if sb.Len() > 0 {
			runs = append(runs, model.Run{Text: sb.String(), Style: style, Hyperlink: hyperlink})
			sb.Reset()
		}
	}

	for _, child := range r.ChildElements() {
		switch child.Tag {
		case "t":
			sb.WriteString(child.Text())
		case "tab", "ptab":
			sb.WriteByte('\t')
		case "noBreakHyphen":
			sb.WriteByte('-')
		case "br", "cr":
			flush()
			runs = append(runs, linebreak.Marker)
		}
	}
	flush()
	return runs
}
