package mdrender_test

import (
	"strings"
	"testing"

	"github.com/iyulab/undoc/pkg/mdrender"
	"github.com/iyulab/undoc/pkg/model"
)

// These mirror the concrete end-to-end scenarios spec.md §8 spells out
// (S1-S6), built directly against model.Document rather than real DOCX/
// XLSX/PPTX bytes since no binary fixtures ship with this repo — the
// parsers have their own white-box tests for the decode side.

func mustRender(t *testing.T, doc *model.Document, opts model.RenderOptions) string {
	t.Helper()
	out, err := mdrender.Render(doc, opts)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	return out
}

func TestScenarioS1HeadingAndParagraph(t *testing.T) {
	doc := &model.Document{
		Format: model.FormatDocx,
		Sections: []model.Section{
			{Blocks: []model.BlockElement{
				model.NewParagraph(1, []model.Run{{Text: "Intro"}}),
				model.NewParagraph(0, []model.Run{{Text: "Hello"}}),
			}},
		},
	}
	got := mustRender(t, doc, model.RenderOptions{})
	want := "# Intro\n\nHello\n"
	if got != want {
		t.Errorf("S1 = %q, want %q", got, want)
	}
}

func TestScenarioS2SheetTable(t *testing.T) {
	name := "Data"
	doc := &model.Document{
		Format: model.FormatXlsx,
		Sections: []model.Section{
			{Name: &name, Blocks: []model.BlockElement{
				model.NewTableBlock(&model.Table{
					HeaderRow: true,
					Width:     2,
					Rows: [][]model.Cell{
						{
							{RowSpan: 1, ColSpan: 1, Blocks: textPara("name")},
							{RowSpan: 1, ColSpan: 1, Blocks: textPara("age")},
						},
						{
							{RowSpan: 1, ColSpan: 1, Blocks: textPara("kim")},
							{RowSpan: 1, ColSpan: 1, Blocks: textPara("37")},
						},
					},
				}),
			}},
		},
	}
	got := mustRender(t, doc, model.RenderOptions{TableMode: model.TableMarkdown})
	want := "## Data\n\n| name | age |\n| --- | --- |\n| kim | 37 |\n"
	if got != want {
		t.Errorf("S2 = %q, want %q", got, want)
	}
}

func TestScenarioS3TwoSlidesWithBullets(t *testing.T) {
	doc := &model.Document{
		Format: model.FormatPptx,
		Sections: []model.Section{
			slideWithTitleAndBullet("A"),
			slideWithTitleAndBullet("B"),
		},
	}
	got := mustRender(t, doc, model.RenderOptions{})
	want := "# A\n\n- x\n\n---\n\n# B\n\n- x\n"
	if got != want {
		t.Errorf("S3 = %q, want %q", got, want)
	}
}

func TestScenarioS4BoldThenPlain(t *testing.T) {
	doc := &model.Document{
		Format: model.FormatDocx,
		Sections: []model.Section{
			{Blocks: []model.BlockElement{
				model.NewParagraph(0, []model.Run{
					{Text: "Bold", Style: model.RunStyle{Bold: true}},
					{Text: " then plain"},
				}),
			}},
		},
	}
	got := mustRender(t, doc, model.RenderOptions{})
	want := "**Bold** then plain\n"
	if got != want {
		t.Errorf("S4 = %q, want %q", got, want)
	}
}

func TestScenarioS5SpanningTableFallsBackToHtml(t *testing.T) {
	doc := &model.Document{
		Format: model.FormatDocx,
		Sections: []model.Section{
			{Blocks: []model.BlockElement{
				model.NewTableBlock(&model.Table{
					Width: 2,
					Rows: [][]model.Cell{
						{{RowSpan: 1, ColSpan: 2, Blocks: textPara("H")}},
						{
							{RowSpan: 1, ColSpan: 1, Blocks: textPara("a")},
							{RowSpan: 1, ColSpan: 1, Blocks: textPara("b")},
						},
					},
				}),
			}},
		},
	}
	got := mustRender(t, doc, model.RenderOptions{TableMode: model.TableHtml})
	if !strings.Contains(got, "<table>") {
		t.Errorf("S5 missing <table>: %q", got)
	}
	if !strings.Contains(got, `<td colspan="2">H</td>`) {
		t.Errorf("S5 missing spanning cell: %q", got)
	}
}

// S6 (non-ZIP input yields UnsupportedFormat) has no Markdown-rendering
// surface; it is covered by TestParseBytesRejectsNonZip in extract_test.go.

func textPara(text string) []model.BlockElement {
	return []model.BlockElement{model.NewParagraph(0, []model.Run{{Text: text}})}
}

func slideWithTitleAndBullet(title string) model.Section {
	name := title
	return model.Section{
		Name: &name,
		Blocks: []model.BlockElement{
			model.NewParagraph(1, []model.Run{{Text: title}}),
			func() model.BlockElement {
				b := model.NewParagraph(0, []model.Run{{Text: "x"}})
				b.List = &model.ListContext{Kind: model.ListUnordered}
				return b
			}(),
		},
	}
}
