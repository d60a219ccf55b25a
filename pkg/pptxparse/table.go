package pptxparse

import (
	"strconv"

	"github.com/beevik/etree"

	"github.com/iyulab/undoc/pkg/model"
)

// decodeTable decodes an <a:tbl> into a model.Table. Structurally this is
// the same grid-merge problem docxparse solves for <w:tbl> (spec.md §4.F
// "same grid rules as DOCX"), but DrawingML spells the merge attributes
// directly on <a:tc> (gridSpan/rowSpan/hMerge/vMerge) instead of nesting
// them in a tcPr child.
func (w *slideWalker) decodeTable(tbl *etree.Element) *model.Table {
	width := 0
	if grid := tbl.FindElement("tblGrid"); grid != nil {
		width = len(grid.FindElements("gridCol"))
	}

	header := false
	if tblPr := tbl.FindElement("tblPr"); tblPr != nil {
		header = tblPr.SelectAttrValue("firstRow", "0") == "1"
	}

	trs := tbl.FindElements("tr")
	rows := make([][]model.Cell, 0, len(trs))
	// vMergeOpen[col] tracks the (row, col) of the cell currently
	// absorbing a vertical merge in that column. Indices rather than a
	// *model.Cell: the in-progress row slice can reallocate on a later
	// append within the same tr, which would silently invalidate a
	// pointer taken earlier. rows[ri] is only read back once tr ri has
	// been fully appended to rows, so the index pair stays valid.
	type mergeAnchor struct{ row, col int }
	vMergeOpen := map[int]mergeAnchor{}

	for ri, tr := range trs {
		var row []model.Cell
		col := 0
		for _, tc := range tr.FindElements("tc") {
			if tc.SelectAttrValue("hMerge", "0") == "1" {
				// Horizontally absorbed cell: its ColSpan was already
				// claimed by the cell to its left.
				continue
			}
			colSpan := 1
			if n, err := strconv.Atoi(tc.SelectAttrValue("gridSpan", "1")); err == nil && n > 0 {
				colSpan = n
			}
			if tc.SelectAttrValue("vMerge", "0") == "1" {
				if anchor, ok := vMergeOpen[col]; ok {
					rows[anchor.row][anchor.col].RowSpan++
					row = append(row, model.Cell{RowSpan: 1, ColSpan: colSpan})
					col += colSpan
					continue
				}
			}

			cell := model.Cell{RowSpan: 1, ColSpan: colSpan, Blocks: w.decodeCellBlocks(tc)}
			row = append(row, cell)
			vMergeOpen[col] = mergeAnchor{row: ri, col: len(row) - 1}
			col += colSpan
		}
		rows = append(rows, row)
		if width == 0 {
			width = col
		}
	}

	return &model.Table{HeaderRow: header, Width: width, Rows: rows}
}

func (w *slideWalker) decodeCellBlocks(tc *etree.Element) []model.BlockElement {
	txBody := tc.FindElement("txBody")
	if txBody == nil {
		return nil
	}
	var blocks []model.BlockElement
	for _, p := range txBody.FindElements("p") {
		blocks = append(blocks, w.decodeParagraph(p, 0)...)
	}
	return blocks
}
