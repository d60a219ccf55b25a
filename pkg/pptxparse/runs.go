package pptxparse

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/iyulab/undoc/pkg/model"
)

// decodeRunProps reads an <a:rPr> into a RunStyle. Unlike WordprocessingML,
// DrawingML carries bold/italic/underline/strike directly as attributes on
// rPr rather than as child toggle elements, per spec.md §4.F "mirroring
// DrawingML".
func decodeRunProps(rPr *etree.Element) model.RunStyle {
	var s model.RunStyle
	if rPr == nil {
		return s
	}
	s.Bold = attrBool(rPr, "b")
	s.Italic = attrBool(rPr, "i")
	if strike := rPr.SelectAttrValue("strike", "noStrike"); strike != "" && strike != "noStrike" {
		s.Strike = true
	}
	if u := rPr.SelectAttrValue("u", "none"); u != "" && u != "none" {
		s.Underline = true
	}
	if baseline := rPr.SelectAttrValue("baseline", ""); baseline != "" {
		if n, ok := parsePercent(baseline); ok {
			switch {
			case n > 0:
				s.Superscript = true
			case n < 0:
				s.Subscript = true
			}
		}
	}
	return s
}

func attrBool(el *etree.Element, name string) bool {
	v := el.SelectAttrValue(name, "0")
	return v == "1" || strings.EqualFold(v, "true")
}

// parsePercent parses a:rPr's baseline attribute, a signed percentage in
// thousandths (e.g. "30000" = 30%).
func parsePercent(v string) (int, bool) {
	n := 0
	neg := false
	i := 0
	if i < len(v) && (v[i] == '-' || v[i] == '+') {
		neg = v[i] == '-'
		i++
	}
	if i == len(v) {
		return 0, false
	}
	for ; i < len(v); i++ {
		if v[i] < '0' || v[i] > '9' {
			return 0, false
		}
		n = n*10 + int(v[i]-'0')
	}
	if neg {
		n = -n
	}
	return n, true
}

// decodeRun decodes a single <a:r> into one Run. DrawingML has no tab/cr
// children analogous to WordprocessingML's — line breaks are the sibling
// element <a:br>, handled by the paragraph walker, not here.
func decodeRun(r *etree.Element, hyperlink *string) model.Run {
	style := decodeRunProps(r.FindElement("rPr"))
	text := ""
	if t := r.FindElement("t"); t != nil {
		text = t.Text()
	}
	return model.Run{Text: text, Style: style, Hyperlink: hyperlink}
}

// hyperlinkID extracts the r:id of an <a:hlinkClick> inside an <a:rPr>,
// if any.
func hyperlinkID(rPr *etree.Element) string {
	if rPr == nil {
		return ""
	}
	if h := rPr.FindElement("hlinkClick"); h != nil {
		return h.SelectAttrValue("id", "")
	}
	return ""
}
