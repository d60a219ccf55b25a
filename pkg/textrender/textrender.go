// Package textrender implements spec.md component J: the plain-text
// renderer. No markup characters are emitted — run styling, hyperlinks,
// and list bullets all collapse to their bare text.
package textrender

import (
	"strings"

	"github.com/iyulab/undoc/pkg/model"
)

// Render concatenates run texts paragraph by paragraph, tab-separated
// table rows, "\n\n"-separated sections, per spec.md §4.H.
func Render(doc *model.Document) string {
	var sections []string
	for _, sec := range doc.Sections {
		var lines []string
		for _, b := range sec.Blocks {
			if line, ok := renderBlock(b); ok {
				lines = append(lines, line)
			}
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}
	return strings.Join(sections, "\n\n")
}

func renderBlock(b model.BlockElement) (string, bool) {
	switch b.Kind {
	case model.BlockParagraph:
		text := runText(b.Runs)
		if text == "" {
			return "", false
		}
		return text, true
	case model.BlockTable:
		return renderTable(b.Table), true
	case model.BlockImage:
		if b.Image == nil {
			return "", false
		}
		return b.Image.AltText, b.Image.AltText != ""
	case model.BlockSpeakerNotes:
		text := runText(b.NoteRuns)
		return text, text != ""
	default:
		return "", false
	}
}

func runText(runs []model.Run) string {
	var sb strings.Builder
	for _, r := range runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

func renderTable(t *model.Table) string {
	if t == nil {
		return ""
	}
	var rows []string
	for _, row := range t.Rows {
		var cells []string
		for _, c := range row {
			var parts []string
			for _, b := range c.Blocks {
				if b.Kind == model.BlockParagraph {
					if text := runText(b.Runs); text != "" {
						parts = append(parts, text)
					}
				}
			}
			cells = append(cells, strings.Join(parts, " "))
		}
		rows = append(rows, strings.Join(cells, "\t"))
	}
	return strings.Join(rows, "\n")
}
