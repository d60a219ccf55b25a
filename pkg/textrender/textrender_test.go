package textrender_test

import (
	"testing"

	"github.com/iyulab/undoc/pkg/model"
	"github.com/iyulab/undoc/pkg/textrender"
)

func TestRenderStripsMarkup(t *testing.T) {
	doc := &model.Document{
		Sections: []model.Section{
			{
				Blocks: []model.BlockElement{
					model.NewParagraph(1, []model.Run{
						{Text: "Heading", Style: model.RunStyle{Bold: true}},
					}),
					model.NewParagraph(0, []model.Run{
						{Text: "plain text"},
					}),
				},
			},
		},
	}
	got := textrender.Render(doc)
	want := "Heading\nplain text"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderTableTabSeparated(t *testing.T) {
	table := &model.Table{
		Width: 2,
		Rows: [][]model.Cell{
			{
				{RowSpan: 1, ColSpan: 1, Blocks: []model.BlockElement{model.NewParagraph(0, []model.Run{{Text: "a"}})}},
				{RowSpan: 1, ColSpan: 1, Blocks: []model.BlockElement{model.NewParagraph(0, []model.Run{{Text: "b"}})}},
			},
		},
	}
	doc := &model.Document{
		Sections: []model.Section{{Blocks: []model.BlockElement{model.NewTableBlock(table)}}},
	}
	got := textrender.Render(doc)
	if got != "a\tb" {
		t.Errorf("Render = %q, want %q", got, "a\tb")
	}
}

func TestRenderSectionsBlankLineSeparated(t *testing.T) {
	doc := &model.Document{
		Sections: []model.Section{
			{Blocks: []model.BlockElement{model.NewParagraph(0, []model.Run{{Text: "one"}})}},
			{Blocks: []model.BlockElement{model.NewParagraph(0, []model.Run{{Text: "two"}})}},
		},
	}
	got := textrender.Render(doc)
	if got != "one\n\ntwo" {
		t.Errorf("Render = %q, want %q", got, "one\n\ntwo")
	}
}
