package docxparse

import (
	"strconv"

	"github.com/beevik/etree"

	"github.com/iyulab/undoc/pkg/model"
)

// decodeTable decodes a <w:tbl> into a model.Table, per spec.md §4.D:
// grid width from <w:tblGrid>, <w:gridSpan> for column span, <w:vMerge
// w:val="restart"> starts a vertical merge that continuation rows (bare
// <w:vMerge/> or w:val="continue") extend upward into, and the header row
// is the first row iff it carries <w:tblHeader/> in its <w:trPr>.
func (p *paragraphWalker) decodeTable(tbl *etree.Element) *model.Table {
	width := 0
	if grid := tbl.FindElement("tblGrid"); grid != nil {
		width = len(grid.FindElements("gridCol"))
	}

	trs := tbl.FindElements("tr")
	rows := make([][]model.Cell, 0, len(trs))
	header := false

	// vMergeOpen[col] tracks the (row, col) of the cell currently
	// absorbing a vertical merge in that column, so a "continue" row can
	// grow its RowSpan. Indices rather than a *model.Cell: row is still
	// growing via append while its own tr is being decoded, and a pointer
	// taken mid-append is invalidated by the slice's next reallocation.
	// rows[row][col] stays valid once a later tr is being processed,
	// since by then that row has been fully appended to rows.
	type mergeAnchor struct{ row, col int }
	vMergeOpen := map[int]mergeAnchor{}

	for ri, tr := range trs {
		if ri == 0 {
			if trPr := tr.FindElement("trPr"); trPr != nil && trPr.FindElement("tblHeader") != nil {
				header = true
			}
		}

		var row []model.Cell
		col := 0
		for _, tc := range tr.FindElements("tc") {
			colSpan := 1
			vMergeVal := "" // "", "restart", "continue"
			if tcPr := tc.FindElement("tcPr"); tcPr != nil {
				if gs := tcPr.FindElement("gridSpan"); gs != nil {
					if n, err := strconv.Atoi(gs.SelectAttrValue("val", "1")); err == nil && n > 0 {
						colSpan = n
					}
				}
				if vm := tcPr.FindElement("vMerge"); vm != nil {
					vMergeVal = vm.SelectAttrValue("val", "continue")
				}
			}

			if vMergeVal == "continue" {
				if anchor, ok := vMergeOpen[col]; ok {
					rows[anchor.row][anchor.col].RowSpan++
					// Emit an empty placeholder cell so the grid stays
					// rectangular (spec.md invariant 4); it carries no
					// content of its own.
					row = append(row, model.Cell{RowSpan: 1, ColSpan: colSpan, Blocks: nil})
					col += colSpan
					continue
				}
				// No open merge to continue — treat as a normal cell.
				vMergeVal = ""
			}

			cell := model.Cell{
				RowSpan: 1,
				ColSpan: colSpan,
				Blocks:  p.decodeCellBlocks(tc),
			}
			row = append(row, cell)
			if vMergeVal == "restart" {
				vMergeOpen[col] = mergeAnchor{row: ri, col: len(row) - 1}
			} else {
				delete(vMergeOpen, col)
			}
			col += colSpan
		}
		rows = append(rows, row)
		if width == 0 {
			width = col
		}
	}

	return &model.Table{HeaderRow: header, Width: width, Rows: rows}
}

// decodeCellBlocks decodes the paragraphs/nested tables inside a <w:tc>.
func (p *paragraphWalker) decodeCellBlocks(tc *etree.Element) []model.BlockElement {
	var blocks []model.BlockElement
	for _, child := range tc.ChildElements() {
		switch child.Tag {
		case "p":
			blocks = append(blocks, p.decodeParagraph(child)...)
		case "tbl":
			blocks = append(blocks, model.NewTableBlock(p.decodeTable(child)))
		}
	}
	return blocks
}
