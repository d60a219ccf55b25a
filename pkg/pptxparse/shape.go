package pptxparse

import (
	"strconv"

	"github.com/beevik/etree"

	"github.com/iyulab/undoc/internal/linebreak"
	"github.com/iyulab/undoc/internal/runmerge"
	"github.com/iyulab/undoc/pkg/model"
	"github.com/iyulab/undoc/pkg/opc"
)

// slideWalker holds the state needed to decode one slide: its
// relationships (hyperlinks, images, notes) and the shared resource map
// being built up across the whole presentation.
type slideWalker struct {
	container *opc.Container
	rels      *opc.Relationships
	resources map[string]model.Resource
}

// decodeSlide walks a <p:sld>'s shape tree into BlockElements, per
// spec.md §4.F: text blocks in shape Z-order first, then tables; notes
// are appended by the caller since they live in a separate part. Returns
// the decoded blocks plus the slide's title text, if any placeholder or
// centered top-most text body supplied one.
func (w *slideWalker) decodeSlide(sld *etree.Element) (blocks []model.BlockElement, title *string) {
	cSld := sld.FindElement("cSld")
	if cSld == nil {
		return nil, nil
	}
	spTree := cSld.FindElement("spTree")
	if spTree == nil {
		return nil, nil
	}

	titleShape := findTitleShape(spTree)

	var textBlocks, tableBlocks []model.BlockElement
	for _, child := range spTree.ChildElements() {
		switch child.Tag {
		case "sp":
			outline := 0
			if child == titleShape {
				outline = 1
			}
			txBody := child.FindElement("txBody")
			if txBody == nil {
				continue
			}
			for _, p := range txBody.FindElements("p") {
				textBlocks = append(textBlocks, w.decodeParagraph(p, outline)...)
			}
		case "pic":
			if rID, alt, ok := picBlip(child); ok {
				if img, ok := w.resolveImage(rID, alt); ok {
					textBlocks = append(textBlocks, model.NewImageBlock(img.ResourceID, img.AltText))
				}
			}
		case "graphicFrame":
			if tbl := findTable(child); tbl != nil {
				tableBlocks = append(tableBlocks, model.NewTableBlock(w.decodeTable(tbl)))
			}
		}
	}

	if titleShape != nil {
		title = shapeText(titleShape)
	}

	blocks = append(blocks, textBlocks...)
	blocks = append(blocks, tableBlocks...)
	return blocks, title
}

// findTitleShape returns the shape whose placeholder type is "title" or
// "ctrTitle"; failing that, the first shape whose paragraphs are all
// center-aligned (spec.md §4.F: "the first top-most centered text body if
// no placeholder").
func findTitleShape(spTree *etree.Element) *etree.Element {
	var fallback *etree.Element
	for _, sp := range spTree.FindElements("sp") {
		nvPr := findDescendant(sp, "nvPr")
		if nvPr != nil {
			if ph := nvPr.FindElement("ph"); ph != nil {
				switch ph.SelectAttrValue("type", "") {
				case "title", "ctrTitle":
					return sp
				}
			}
		}
		if fallback == nil && isCentered(sp) {
			fallback = sp
		}
	}
	return fallback
}

func isCentered(sp *etree.Element) bool {
	txBody := sp.FindElement("txBody")
	if txBody == nil {
		return false
	}
	paras := txBody.FindElements("p")
	if len(paras) == 0 {
		return false
	}
	for _, p := range paras {
		pPr := p.FindElement("pPr")
		if pPr == nil || pPr.SelectAttrValue("algn", "") != "ctr" {
			return false
		}
	}
	return true
}

func findDescendant(e *etree.Element, local string) *etree.Element {
	for _, child := range e.ChildElements() {
		if child.Tag == local {
			return child
		}
		if found := findDescendant(child, local); found != nil {
			return found
		}
	}
	return nil
}

func findTable(graphicFrame *etree.Element) *etree.Element {
	graphic := graphicFrame.FindElement("graphic")
	if graphic == nil {
		return nil
	}
	data := graphic.FindElement("graphicData")
	if data == nil {
		return nil
	}
	return data.FindElement("tbl")
}

func shapeText(sp *etree.Element) *string {
	txBody := sp.FindElement("txBody")
	if txBody == nil {
		return nil
	}
	var sb []byte
	for _, p := range txBody.FindElements("p") {
		for _, r := range p.FindElements("r") {
			if t := r.FindElement("t"); t != nil {
				sb = append(sb, t.Text()...)
			}
		}
	}
	if len(sb) == 0 {
		return nil
	}
	s := string(sb)
	return &s
}

// decodeParagraph decodes an <a:p> into one or more Paragraph
// BlockElements, splitting on <a:br> the same way docxparse splits on
// <w:br>/<w:cr>.
func (w *slideWalker) decodeParagraph(p *etree.Element, outline int) []model.BlockElement {
	var listCtx *model.ListContext
	if pPr := p.FindElement("pPr"); pPr != nil {
		lvl := 0
		if v := pPr.SelectAttrValue("lvl", ""); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				lvl = n
			}
		}
		switch {
		case pPr.FindElement("buNone") != nil:
			listCtx = nil
		case pPr.FindElement("buAutoNum") != nil:
			listCtx = &model.ListContext{Kind: model.ListOrdered, Depth: lvl, Start: 1}
		case pPr.FindElement("buChar") != nil:
			listCtx = &model.ListContext{Kind: model.ListUnordered, Depth: lvl, Start: 1}
		}
	}

	var runs []model.Run
	for _, child := range p.ChildElements() {
		switch child.Tag {
		case "r":
			runs = append(runs, decodeRun(child, w.hyperlinkTarget(child.FindElement("rPr"))))
		case "br":
			runs = append(runs, linebreak.Marker)
		}
	}

	return splitOnLineBreaks(outline, listCtx, runs)
}

func (w *slideWalker) hyperlinkTarget(rPr *etree.Element) *string {
	rID := hyperlinkID(rPr)
	if rID == "" {
		return nil
	}
	rel, ok := w.rels.Get(rID)
	if !ok {
		return nil
	}
	target := rel.Target
	return &target
}

// splitOnLineBreaks mirrors docxparse's function of the same name: a flat
// run list with linebreak.Marker sentinels becomes one Paragraph per
// segment, each merged with the CJK-aware run merger.
func splitOnLineBreaks(outline int, listCtx *model.ListContext, runs []model.Run) []model.BlockElement {
	var out []model.BlockElement
	var seg []model.Run

	emit := func() {
		block := model.NewParagraph(outline, runmerge.Merge(seg))
		block.List = listCtx
		out = append(out, block)
		seg = nil
	}

	for _, r := range runs {
		if linebreak.Is(r) {
			emit()
			continue
		}
		seg = append(seg, r)
	}
	emit()
	return out
}
