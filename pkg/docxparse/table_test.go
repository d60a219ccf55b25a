package docxparse

import (
	"testing"

	"github.com/iyulab/undoc/pkg/model"
)

func testWalker() *paragraphWalker {
	return &paragraphWalker{
		resources: map[string]model.Resource{},
		numbering: loadNumbering(nil),
		styles:    loadStyles(nil),
	}
}

func TestDecodeTableGridSpanSumsToWidth(t *testing.T) {
	tbl := mustParseElement(t, `<tbl>
  <tblGrid><gridCol/><gridCol/><gridCol/></tblGrid>
  <tr>
    <tc><tcPr><gridSpan val="2"/></tcPr><p><r><t>wide</t></r></p></tc>
    <tc><p><r><t>c</t></r></p></tc>
  </tr>
</tbl>`)
	w := testWalker()
	table := w.decodeTable(tbl)
	if table.Width != 3 {
		t.Fatalf("Width = %d, want 3", table.Width)
	}
	sum := 0
	for _, c := range table.Rows[0] {
		sum += c.ColSpan
	}
	if sum != table.Width {
		t.Errorf("ColSpan sum = %d, want %d", sum, table.Width)
	}
}

// TestDecodeTableVerticalMergeSurvivesRowGrowth exercises a row with a
// vMerge restart cell followed by several more cells in the same tr, so
// the row slice that held the restart cell must grow (and potentially
// reallocate) before the next tr's "continue" cell looks the anchor back
// up — regression coverage for a stale-pointer bug in the original
// implementation.
func TestDecodeTableVerticalMergeSurvivesRowGrowth(t *testing.T) {
	tbl := mustParseElement(t, `<tbl>
  <tblGrid><gridCol/><gridCol/><gridCol/><gridCol/><gridCol/><gridCol/></tblGrid>
  <tr>
    <tc><tcPr><vMerge val="restart"/></tcPr><p><r><t>merged</t></r></p></tc>
    <tc><p><r><t>b</t></r></p></tc>
    <tc><p><r><t>c</t></r></p></tc>
    <tc><p><r><t>d</t></r></p></tc>
    <tc><p><r><t>e</t></r></p></tc>
    <tc><p><r><t>f</t></r></p></tc>
  </tr>
  <tr>
    <tc><tcPr><vMerge/></tcPr><p/></tc>
    <tc><p><r><t>b2</t></r></p></tc>
    <tc><p><r><t>c2</t></r></p></tc>
    <tc><p><r><t>d2</t></r></p></tc>
    <tc><p><r><t>e2</t></r></p></tc>
    <tc><p><r><t>f2</t></r></p></tc>
  </tr>
</tbl>`)
	w := testWalker()
	table := w.decodeTable(tbl)

	if table.Rows[0][0].RowSpan != 2 {
		t.Errorf("RowSpan of the restart cell = %d, want 2 (bug: stale pointer from a grown row slice)", table.Rows[0][0].RowSpan)
	}
}
