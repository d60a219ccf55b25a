// Package docxparse implements spec.md component E: decoding
// word/document.xml (plus styles, numbering, and drawings) into the
// unified document model.
package docxparse

import (
	"strconv"

	"github.com/beevik/etree"

	"github.com/iyulab/undoc/internal/linebreak"
	"github.com/iyulab/undoc/internal/runmerge"
	"github.com/iyulab/undoc/pkg/model"
	"github.com/iyulab/undoc/pkg/ooxmlerr"
	"github.com/iyulab/undoc/pkg/opc"
)

const (
	documentPart  = "word/document.xml"
	stylesPart    = "word/styles.xml"
	numberingPart = "word/numbering.xml"
)

// paragraphWalker holds the state needed while walking the body: the
// part's relationships (for hyperlinks and images), the shared resource
// map being built up, and the pre-parsed styles/numbering lookups.
type paragraphWalker struct {
	container *opc.Container
	rels      *opc.Relationships
	resources map[string]model.Resource
	numbering *numbering
	styles    outlineLevels
}

// Parse decodes a DOCX container into sections and resources. Lenient
// mode is honored at the single-document-body granularity DOCX has: if
// the body fails to parse, one Diagnostic is recorded and an empty
// section list is returned instead of a fatal error.
func Parse(c *opc.Container, opts model.ParseOptions) ([]model.Section, map[string]model.Resource, []model.Diagnostic, error) {
	docBytes, err := c.ReadPart(documentPart)
	if err != nil {
		return nil, nil, nil, ooxmlerr.NewMalformedPackageError(err, "docxparse: missing %q", documentPart)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(docBytes); err != nil {
		xmlErr := ooxmlerr.NewMalformedXmlError(err, documentPart, "docxparse: parsing %q", documentPart)
		if opts.Lenient {
			return nil, map[string]model.Resource{}, []model.Diagnostic{{SectionIndex: 0, PartName: documentPart, Err: xmlErr}}, nil
		}
		return nil, nil, nil, xmlErr
	}
	root := doc.Root()
	if root == nil {
		return nil, nil, nil, ooxmlerr.NewMalformedPackageError(nil, "docxparse: %q has no root element", documentPart)
	}
	body := root.FindElement("body")
	if body == nil {
		return nil, nil, nil, ooxmlerr.NewMalformedPackageError(nil, "docxparse: %q has no <w:body>", documentPart)
	}

	rels, err := opc.LoadRelationships(c, documentPart)
	if err != nil {
		return nil, nil, nil, err
	}

	var stylesXML, numberingXML []byte
	if c.HasPart(stylesPart) {
		stylesXML, _ = c.ReadPart(stylesPart)
	}
	if c.HasPart(numberingPart) {
		numberingXML, _ = c.ReadPart(numberingPart)
	}

	walker := &paragraphWalker{
		container: c,
		rels:      rels,
		resources: map[string]model.Resource{},
		numbering: loadNumbering(numberingXML),
		styles:    loadStyles(stylesXML),
	}

	sections := walker.walkBody(body)
	return sections, walker.resources, nil, nil
}

// walkBody splits the body's flow into logical sections on embedded
// section-break markers (a paragraph's <w:pPr><w:sectPr> closes the
// section that paragraph belongs to), per spec.md §4.D / §3 "Section: for
// DOCX a logical section break group". A body with no such marker (only
// the trailing body-level sectPr, the common case) is a single section.
func (w *paragraphWalker) walkBody(body *etree.Element) []model.Section {
	var blocks []model.BlockElement
	var sections []model.Section

	flushSection := func() {
		if len(blocks) == 0 {
			return
		}
		sections = append(sections, model.Section{Blocks: blocks})
		blocks = nil
	}

	for _, child := range body.ChildElements() {
		switch child.Tag {
		case "p":
			paraBlocks := w.decodeParagraph(child)
			blocks = append(blocks, paraBlocks...)
			if pPr := child.FindElement("pPr"); pPr != nil && pPr.FindElement("sectPr") != nil {
				flushSection()
			}
		case "tbl":
			blocks = append(blocks, model.NewTableBlock(w.decodeTable(child)))
		}
	}
	flushSection()
	if len(sections) == 0 {
		sections = []model.Section{{}}
	}
	return sections
}

// decodeParagraph decodes a <w:p> into one or more Paragraph
// BlockElements: a <w:br>/<w:cr> forbids a newline inside a single Run's
// text (spec.md invariant 3), so it splits the run list into a new
// Paragraph block sharing the same outline level and list context.
func (w *paragraphWalker) decodeParagraph(p *etree.Element) []model.BlockElement {
	outline := 0
	var listCtx *model.ListContext
	if pPr := p.FindElement("pPr"); pPr != nil {
		if styleEl := pPr.FindElement("pStyle"); styleEl != nil {
			outline = w.styles.OutlineLevel(styleEl.SelectAttrValue("val", ""))
		}
		if numPr := pPr.FindElement("numPr"); numPr != nil {
			listCtx = w.decodeListContext(numPr)
		}
	}

	var runs []model.Run
	var images []model.ImageRef

	var walkRunChildren func(e *etree.Element, hyperlink *string)
	walkRunChildren = func(e *etree.Element, hyperlink *string) {
		for _, child := range e.ChildElements() {
			switch child.Tag {
			case "r":
				runs = append(runs, decodeRun(child, hyperlink)...)
				if drawing := child.FindElement("drawing"); drawing != nil {
					if rID, alt, ok := blipRef(drawing); ok {
						if img, ok := w.resolveImage(rID, alt); ok {
							images = append(images, img)
						}
					}
				}
			case "hyperlink":
				href := w.hyperlinkTarget(child)
				walkRunChildren(child, href)
			}
		}
	}
	walkRunChildren(p, nil)

	return splitOnLineBreaks(outline, listCtx, runs, images)
}

// splitOnLineBreaks turns a flat run list possibly containing
// linebreak.Marker sentinels into one or more Paragraph BlockElements,
// merging each segment's runs with the CJK-aware merger before emitting
// it. All standalone images stay attached to the first emitted paragraph,
// mirroring "ordered list of image references" living on the paragraph
// that contained the drawing.
func splitOnLineBreaks(outline int, listCtx *model.ListContext, runs []model.Run, images []model.ImageRef) []model.BlockElement {
	var out []model.BlockElement
	var seg []model.Run
	first := true

	emit := func() {
		block := model.NewParagraph(outline, runmerge.Merge(seg))
		block.List = listCtx
		if first {
			block.Images = images
			first = false
		}
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

func (w *paragraphWalker) decodeListContext(numPr *etree.Element) *model.ListContext {
	numID := ""
	ilvl := 0
	if n := numPr.FindElement("numId"); n != nil {
		numID = n.SelectAttrValue("val", "")
	}
	if l := numPr.FindElement("ilvl"); l != nil {
		if v, err := strconv.Atoi(l.SelectAttrValue("val", "0")); err == nil {
			ilvl = v
		}
	}
	if ilvl < 0 {
		ilvl = 0
	}
	if ilvl > 8 {
		ilvl = 8
	}
	if lvl, ok := w.numbering.Lookup(numID, ilvl); ok {
		return &model.ListContext{Kind: lvl.Kind, Depth: ilvl, Start: lvl.Start}
	}
	return &model.ListContext{Kind: model.ListUnordered, Depth: ilvl, Start: 1}
}

// hyperlinkTarget resolves a <w:hyperlink>'s r:id to its relationship
// target (spec.md §4.D). A hyperlink with no matching rId (dangling or
// internal anchor-only) yields no target; its runs still decode as plain
// text.
func (w *paragraphWalker) hyperlinkTarget(hyperlink *etree.Element) *string {
	rID := hyperlink.SelectAttrValue("id", "")
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
