package mdrender

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iyulab/undoc/pkg/model"
)

// hasSpan reports whether any cell in t spans more than one row or column,
// the trigger for falling back off plain Markdown pipe tables (spec.md
// §4.G).
func hasSpan(t *model.Table) bool {
	for _, row := range t.Rows {
		for _, c := range row {
			if c.RowSpan > 1 || c.ColSpan > 1 {
				return true
			}
		}
	}
	return false
}

func (r *renderer) renderTable(t *model.Table) string {
	if t == nil {
		return ""
	}
	if hasSpan(t) {
		switch r.opts.TableMode {
		case model.TableHtml:
			return r.renderTableHTML(t)
		case model.TableAscii:
			return r.renderTableAscii(t)
		}
	}
	return r.renderTableMarkdown(t)
}

func (r *renderer) cellText(c model.Cell) string {
	var parts []string
	for _, b := range c.Blocks {
		if b.Kind == model.BlockParagraph {
			if txt := r.renderRuns(b.Runs); txt != "" {
				parts = append(parts, txt)
			}
		}
	}
	return strings.Join(parts, "<br>")
}

func (r *renderer) writeTableRow(sb *strings.Builder, row []model.Cell) {
	sb.WriteString("|")
	for _, c := range row {
		sb.WriteString(" ")
		sb.WriteString(strings.ReplaceAll(r.cellText(c), "|", "\\|"))
		sb.WriteString(" |")
	}
	sb.WriteString("\n")
}

// renderTableMarkdown emits a pipe table. When the model's HeaderRow flag
// is set, the first row's own content is the header line; otherwise a
// blank header row is emitted ahead of the separator (spec.md §4.G: "else
// a blank header row is emitted").
func (r *renderer) renderTableMarkdown(t *model.Table) string {
	var sb strings.Builder
	rows := t.Rows
	if t.HeaderRow && len(rows) > 0 {
		r.writeTableRow(&sb, rows[0])
		rows = rows[1:]
	} else {
		sb.WriteString(strings.Repeat("| ", t.Width))
		sb.WriteString("|\n")
	}
	for i := 0; i < t.Width; i++ {
		sb.WriteString("| --- ")
	}
	sb.WriteString("|\n")

	for _, row := range rows {
		r.writeTableRow(&sb, row)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (r *renderer) renderTableHTML(t *model.Table) string {
	var sb strings.Builder
	sb.WriteString("<table>\n")
	for ri, row := range t.Rows {
		sb.WriteString("<tr>\n")
		cellTag := "td"
		if t.HeaderRow && ri == 0 {
			cellTag = "th"
		}
		for _, c := range row {
			sb.WriteString("<" + cellTag)
			if c.RowSpan > 1 {
				sb.WriteString(` rowspan="` + strconv.Itoa(c.RowSpan) + `"`)
			}
			if c.ColSpan > 1 {
				sb.WriteString(` colspan="` + strconv.Itoa(c.ColSpan) + `"`)
			}
			sb.WriteString(">")
			sb.WriteString(r.cellText(c))
			sb.WriteString("</" + cellTag + ">\n")
		}
		sb.WriteString("</tr>\n")
	}
	sb.WriteString("</table>")
	return sb.String()
}

// renderTableAscii box-draws the grid. Column width is sized off the
// widest rendered cell actually occupying that column; a spanning cell's
// text is placed in its left/top-most column, the rest of its span left
// blank — a plain-text rendering has no way to visually merge cells.
func (r *renderer) renderTableAscii(t *model.Table) string {
	widths := make([]int, t.Width)
	grid := make([][]string, len(t.Rows))
	for ri, row := range t.Rows {
		cells := make([]string, t.Width)
		col := 0
		for _, c := range row {
			if col >= t.Width {
				break
			}
			text := r.cellText(c)
			cells[col] = text
			if len(text) > widths[col] {
				widths[col] = len(text)
			}
			col += c.ColSpan
		}
		grid[ri] = cells
	}

	var sb strings.Builder
	writeBorder := func() {
		sb.WriteString("+")
		for _, w := range widths {
			sb.WriteString(strings.Repeat("-", w+2))
			sb.WriteString("+")
		}
		sb.WriteString("\n")
	}
	writeRow := func(cells []string) {
		sb.WriteString("|")
		for i, w := range widths {
			sb.WriteString(fmt.Sprintf(" %-*s |", w, cells[i]))
		}
		sb.WriteString("\n")
	}

	writeBorder()
	for _, cells := range grid {
		writeRow(cells)
		writeBorder()
	}
	return strings.TrimRight(sb.String(), "\n")
}
