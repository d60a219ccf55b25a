package xlsxparse

import (
	"testing"

	"github.com/beevik/etree"

	"github.com/iyulab/undoc/pkg/model"
)

func mustParseRoot(t *testing.T, xml string) *etree.Element {
	t.Helper()
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes([]byte(xml)); err != nil {
		t.Fatalf("parsing test XML: %v", err)
	}
	return doc.Root()
}

func cellPlainText(c model.Cell) string {
	for _, b := range c.Blocks {
		if b.Kind == model.BlockParagraph {
			for _, r := range b.Runs {
				return r.Text
			}
		}
	}
	return ""
}
