// Package xlsxparse implements spec.md component F: decoding
// xl/workbook.xml (plus shared strings, styles, and per-sheet parts) into
// the unified document model, one Section per visible sheet.
package xlsxparse

import (
	"github.com/beevik/etree"

	"github.com/iyulab/undoc/internal/mimetype"
	"github.com/iyulab/undoc/pkg/model"
	"github.com/iyulab/undoc/pkg/ooxmlerr"
	"github.com/iyulab/undoc/pkg/opc"
)

const workbookPart = "xl/workbook.xml"

type sheetEntry struct {
	name   string
	rID    string
	hidden bool
}

// Parse decodes an XLSX container into one Section per visible sheet.
// Lenient mode is honored at per-sheet granularity: a sheet whose part
// fails to parse is recorded as a Diagnostic and skipped, leaving the
// rest of the workbook intact.
func Parse(c *opc.Container, opts model.ParseOptions) ([]model.Section, map[string]model.Resource, []model.Diagnostic, error) {
	wbBytes, err := c.ReadPart(workbookPart)
	if err != nil {
		return nil, nil, nil, ooxmlerr.NewMalformedPackageError(err, "xlsxparse: missing %q", workbookPart)
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(wbBytes); err != nil {
		return nil, nil, nil, ooxmlerr.NewMalformedXmlError(err, workbookPart, "xlsxparse: parsing %q", workbookPart)
	}
	root := doc.Root()
	if root == nil {
		return nil, nil, nil, ooxmlerr.NewMalformedPackageError(nil, "xlsxparse: %q has no root element", workbookPart)
	}

	sheetsEl := root.FindElement("sheets")
	if sheetsEl == nil {
		return nil, map[string]model.Resource{}, nil, nil
	}
	var entries []sheetEntry
	for _, s := range sheetsEl.FindElements("sheet") {
		entries = append(entries, sheetEntry{
			name:   s.SelectAttrValue("name", ""),
			rID:    s.SelectAttrValue("id", ""),
			hidden: s.SelectAttrValue("state", "visible") != "visible",
		})
	}

	rels, err := opc.LoadRelationships(c, workbookPart)
	if err != nil {
		return nil, nil, nil, err
	}

	var sstBytes, stylesBytes []byte
	if c.HasPart(sharedStringsPart) {
		sstBytes, _ = c.ReadPart(sharedStringsPart)
	}
	if c.HasPart(stylesPart) {
		stylesBytes, _ = c.ReadPart(stylesPart)
	}
	sst := loadSharedStrings(sstBytes)
	styles := loadCellStyles(stylesBytes)

	resources := map[string]model.Resource{}
	var diagnostics []model.Diagnostic
	var sections []model.Section

	for i, e := range entries {
		if e.hidden && !opts.IncludeHiddenSheets {
			continue
		}
		rel, ok := rels.Get(e.rID)
		if !ok {
			continue
		}
		sheetBytes, err := c.ReadPart(rel.Target)
		if err != nil {
			diagnostics = append(diagnostics, model.Diagnostic{SectionIndex: i, PartName: rel.Target, Err: err})
			if opts.Lenient {
				continue
			}
			return nil, nil, nil, ooxmlerr.NewMalformedPackageError(err, "xlsxparse: missing %q", rel.Target)
		}

		table, err := decodeSheet(sheetBytes, sst, styles)
		if err != nil {
			xmlErr := ooxmlerr.NewMalformedXmlError(err, rel.Target, "xlsxparse: parsing %q", rel.Target)
			diagnostics = append(diagnostics, model.Diagnostic{SectionIndex: i, PartName: rel.Target, Err: xmlErr})
			if opts.Lenient {
				continue
			}
			return nil, nil, nil, xmlErr
		}

		name := e.name
		sections = append(sections, model.Section{
			Name:   &name,
			Blocks: []model.BlockElement{model.NewTableBlock(table)},
		})

		sheetRels, err := opc.LoadRelationships(c, rel.Target)
		if err == nil {
			collectSheetImages(c, sheetRels, resources)
		}
	}

	return sections, resources, diagnostics, nil
}

// collectSheetImages pulls in the non-external image relationships listed
// directly in a worksheet's own rels, keyed the same way docxparse keys
// its resources: by resolved part path. Relationships of drawing parts
// (xl/drawings/drawingN.xml) are not followed, so pictures anchored
// through a drawing are not collected.
func collectSheetImages(c *opc.Container, rels *opc.Relationships, resources map[string]model.Resource) {
	for _, rel := range rels.All() {
		if rel.Kind != opc.RelImage || rel.External {
			continue
		}
		if _, ok := resources[rel.Target]; ok {
			continue
		}
		data, err := c.ReadPart(rel.Target)
		if err != nil {
			continue
		}
		resources[rel.Target] = model.Resource{
			ResourceID:   rel.Target,
			MimeType:     mimetype.ForPart(rel.Target),
			FilenameHint: rel.Target,
			PartPath:     rel.Target,
			Bytes:        data,
		}
	}
}
