package pptxparse

import (
	"testing"

	"github.com/iyulab/undoc/pkg/model"
)

func testSlideWalker() *slideWalker {
	return &slideWalker{resources: map[string]model.Resource{}}
}

func TestDecodeTableGridSpanSumsToWidth(t *testing.T) {
	tbl := mustParseElement(t, `<tbl>
  <tblGrid><gridCol/><gridCol/><gridCol/></tblGrid>
  <tr>
    <tc gridSpan="2"><txBody><p><r><t>wide</t></r></p></txBody></tc>
    <tc hMerge="1"/>
    <tc><txBody><p><r><t>c</t></r></p></txBody></tc>
  </tr>
</tbl>`)
	w := testSlideWalker()
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

// TestDecodeTableVerticalMergeSurvivesRowGrowth is the PPTX-side twin of
// docxparse's regression test for the same stale-pointer class of bug:
// a vMerge anchor cell followed by enough sibling cells in the same tr to
// force the row slice to reallocate before a later tr's vMerge="1" cell
// looks the anchor back up.
func TestDecodeTableVerticalMergeSurvivesRowGrowth(t *testing.T) {
	tbl := mustParseElement(t, `<tbl>
  <tblGrid><gridCol/><gridCol/><gridCol/><gridCol/><gridCol/><gridCol/></tblGrid>
  <tr>
    <tc><txBody><p><r><t>merged</t></r></p></txBody></tc>
    <tc><txBody><p><r><t>b</t></r></p></txBody></tc>
    <tc><txBody><p><r><t>c</t></r></p></txBody></tc>
    <tc><txBody><p><r><t>d</t></r></p></txBody></tc>
    <tc><txBody><p><r><t>e</t></r></p></txBody></tc>
    <tc><txBody><p><r><t>f</t></r></p></txBody></tc>
  </tr>
  <tr>
    <tc vMerge="1"/>
    <tc><txBody><p><r><t>b2</t></r></p></txBody></tc>
    <tc><txBody><p><r><t>c2</t></r></p></txBody></tc>
    <tc><txBody><p><r><t>d2</t></r></p></txBody></tc>
    <tc><txBody><p><r><t>e2</t></r></p></txBody></tc>
    <tc><txBody><p><r><t>f2</t></r></p></txBody></tc>
  </tr>
</tbl>`)
	w := testSlideWalker()
	table := w.decodeTable(tbl)

	if table.Rows[0][0].RowSpan != 2 {
		t.Errorf("RowSpan of the anchor cell = %d, want 2 (bug: stale pointer from a grown row slice)", table.Rows[0][0].RowSpan)
	}
}
