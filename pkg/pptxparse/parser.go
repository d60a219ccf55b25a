// Package pptxparse implements spec.md component G: decoding
// ppt/presentation.xml's ordered slide list, each slide's shape tree, and
// its attached notes slide into the unified document model.
package pptxparse

import (
	"github.com/beevik/etree"

	"github.com/iyulab/undoc/internal/runmerge"
	"github.com/iyulab/undoc/pkg/model"
	"github.com/iyulab/undoc/pkg/ooxmlerr"
	"github.com/iyulab/undoc/pkg/opc"
)

const presentationPart = "ppt/presentation.xml"

// Parse decodes a PPTX container into one Section per slide, in
// presentation order. Lenient mode is honored at per-slide granularity: a
// slide whose part fails to parse is recorded as a Diagnostic and
// skipped, matching docxparse/xlsxparse's per-unit lenient behavior.
func Parse(c *opc.Container, opts model.ParseOptions) ([]model.Section, map[string]model.Resource, []model.Diagnostic, error) {
	presBytes, err := c.ReadPart(presentationPart)
	if err != nil {
		return nil, nil, nil, ooxmlerr.NewMalformedPackageError(err, "pptxparse: missing %q", presentationPart)
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(presBytes); err != nil {
		return nil, nil, nil, ooxmlerr.NewMalformedXmlError(err, presentationPart, "pptxparse: parsing %q", presentationPart)
	}
	root := doc.Root()
	if root == nil {
		return nil, nil, nil, ooxmlerr.NewMalformedPackageError(nil, "pptxparse: %q has no root element", presentationPart)
	}

	rels, err := opc.LoadRelationships(c, presentationPart)
	if err != nil {
		return nil, nil, nil, err
	}

	var rIDs []string
	if sldIdLst := root.FindElement("sldIdLst"); sldIdLst != nil {
		for _, sldId := range sldIdLst.FindElements("sldId") {
			rIDs = append(rIDs, sldId.SelectAttrValue("r:id", ""))
		}
	}

	resources := map[string]model.Resource{}
	var diagnostics []model.Diagnostic
	var sections []model.Section

	for i, rID := range rIDs {
		rel, ok := rels.Get(rID)
		if !ok {
			continue
		}
		slidePart := rel.Target

		slideBytes, err := c.ReadPart(slidePart)
		if err != nil {
			diagnostics = append(diagnostics, model.Diagnostic{SectionIndex: i, PartName: slidePart, Err: err})
			if opts.Lenient {
				continue
			}
			return nil, nil, nil, ooxmlerr.NewMalformedPackageError(err, "pptxparse: missing %q", slidePart)
		}

		slideDoc := etree.NewDocument()
		if err := slideDoc.ReadFromBytes(slideBytes); err != nil {
			xmlErr := ooxmlerr.NewMalformedXmlError(err, slidePart, "pptxparse: parsing %q", slidePart)
			diagnostics = append(diagnostics, model.Diagnostic{SectionIndex: i, PartName: slidePart, Err: xmlErr})
			if opts.Lenient {
				continue
			}
			return nil, nil, nil, xmlErr
		}
		sld := slideDoc.Root()
		if sld == nil {
			continue
		}

		slideRels, err := opc.LoadRelationships(c, slidePart)
		if err != nil {
			slideRels = nil
		}

		walker := &slideWalker{container: c, rels: slideRels, resources: resources}
		blocks, title := walker.decodeSlide(sld)

		if notes := loadNotes(c, slideRels); notes != nil {
			blocks = append(blocks, model.NewSpeakerNotes(notes))
		}

		sections = append(sections, model.Section{Name: title, Blocks: blocks})
	}

	return sections, resources, diagnostics, nil
}

// loadNotes resolves the slide's notes-slide relationship, if present,
// and decodes its body paragraphs into a flat run list for a
// BlockSpeakerNotes element, per spec.md §4.F "notes (SpeakerNotes
// element appended last)".
func loadNotes(c *opc.Container, slideRels *opc.Relationships) []model.Run {
	if slideRels == nil {
		return nil
	}
	var notesPart string
	for _, rel := range slideRels.All() {
		if rel.Kind == opc.RelNotes && !rel.External {
			notesPart = rel.Target
			break
		}
	}
	if notesPart == "" || !c.HasPart(notesPart) {
		return nil
	}
	data, err := c.ReadPart(notesPart)
	if err != nil {
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
	cSld := root.FindElement("cSld")
	if cSld == nil {
		return nil
	}
	spTree := cSld.FindElement("spTree")
	if spTree == nil {
		return nil
	}

	var runs []model.Run
	for _, sp := range spTree.FindElements("sp") {
		// Skip the slide-image placeholder shape; only the body
		// placeholder holds the actual notes text.
		nvPr := findDescendant(sp, "nvPr")
		if nvPr != nil {
			if ph := nvPr.FindElement("ph"); ph != nil && ph.SelectAttrValue("type", "") == "sldImg" {
				continue
			}
		}
		txBody := sp.FindElement("txBody")
		if txBody == nil {
			continue
		}
		for _, p := range txBody.FindElements("p") {
			for _, r := range p.FindElements("r") {
				runs = append(runs, decodeRun(r, nil))
			}
		}
	}
	if len(runs) == 0 {
		return nil
	}
	return runmerge.Merge(runs)
}
