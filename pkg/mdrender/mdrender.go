// Package mdrender implements spec.md component I: rendering a
// model.Document into Markdown per model.RenderOptions.
package mdrender

import (
	"strconv"
	"strings"

	"github.com/iyulab/undoc/pkg/cleanup"
	"github.com/iyulab/undoc/pkg/model"
)

type renderer struct {
	opts       model.RenderOptions
	maxHeading int

	inList      bool
	listDepth   int
	listKind    model.ListKind
	listCounter int
}

// Render converts doc into a Markdown string per opts. The only error
// returned is a failure to marshal the frontmatter; a RenderOptions with an unknown
// TableMode value just falls back to Markdown mode rather than failing,
// matching spec.md §6 "RenderError (never fatal in practice)".
func Render(doc *model.Document, opts model.RenderOptions) (string, error) {
	r := &renderer{opts: opts, maxHeading: opts.MaxHeading}
	if r.maxHeading <= 0 || r.maxHeading > 6 {
		r.maxHeading = 6
	}

	var sb strings.Builder
	if opts.Frontmatter {
		fm, err := frontmatter(doc.Metadata)
		if err != nil {
			return "", err
		}
		sb.WriteString(fm)
	}

	blockSep := "\n\n"
	if opts.ParagraphSpacing {
		blockSep = "\n\n\n"
	}

	for si, sec := range doc.Sections {
		if si > 0 {
			if doc.Format == model.FormatPptx {
				sb.WriteString("\n\n---\n\n")
			} else {
				sb.WriteString("\n\n")
			}
		}
		r.inList = false

		var pieces []string
		if doc.Format != model.FormatPptx && sec.Name != nil && *sec.Name != "" {
			pieces = append(pieces, "## "+*sec.Name)
		}
		for _, b := range sec.Blocks {
			if rendered, ok := r.renderBlock(b); ok {
				pieces = append(pieces, rendered)
			}
		}
		sb.WriteString(strings.Join(pieces, blockSep))
	}

	out := cleanup.Apply(sb.String(), opts.CleanupPreset)
	if out == "" {
		return "", nil
	}
	// Markdown output is LF-terminated with exactly one trailing newline
	// (spec.md §6), regardless of which cleanup stages ran.
	return strings.TrimRight(out, "\n") + "\n", nil
}

func (r *renderer) renderBlock(b model.BlockElement) (string, bool) {
	switch b.Kind {
	case model.BlockParagraph:
		return r.renderParagraph(b)
	case model.BlockTable:
		r.inList = false
		return r.renderTable(b.Table), true
	case model.BlockImage:
		r.inList = false
		if b.Image == nil {
			return "", false
		}
		return "![" + b.Image.AltText + "](" + b.Image.ResourceID + ")", true
	case model.BlockSpeakerNotes:
		r.inList = false
		text := r.renderRuns(b.NoteRuns)
		if text == "" {
			return "", false
		}
		return "> " + text, true
	case model.BlockPageBreak:
		r.inList = false
		return "---", true
	case model.BlockSeparator:
		r.inList = false
		return "---", true
	}
	return "", false
}

func (r *renderer) renderParagraph(b model.BlockElement) (string, bool) {
	text := r.renderRuns(b.Runs)
	for _, img := range b.Images {
		if text != "" {
			text += " "
		}
		text += "![" + img.AltText + "](" + img.ResourceID + ")"
	}

	if b.List != nil {
		return r.renderListItem(*b.List, text), true
	}
	r.inList = false

	if text == "" {
		return "", false
	}
	if b.OutlineLevel > 0 {
		level := b.OutlineLevel
		if level > r.maxHeading {
			level = r.maxHeading
		}
		return strings.Repeat("#", level) + " " + text, true
	}
	return text, true
}

func (r *renderer) renderListItem(list model.ListContext, text string) string {
	fresh := !r.inList || r.listDepth != list.Depth || r.listKind != list.Kind
	if fresh {
		r.listCounter = list.Start
	} else {
		r.listCounter++
	}
	r.inList = true
	r.listDepth = list.Depth
	r.listKind = list.Kind

	indent := strings.Repeat("  ", list.Depth)
	if list.Kind == model.ListOrdered {
		return indent + strconv.Itoa(r.listCounter) + ". " + text
	}
	return indent + "- " + text
}

// renderRuns joins a run list into one inline Markdown string, applying
// emphasis nesting (outer to inner: bold, italic, underline, strike) and
// optional escaping per run before concatenation.
func (r *renderer) renderRuns(runs []model.Run) string {
	var sb strings.Builder
	for _, run := range runs {
		sb.WriteString(r.renderRun(run))
	}
	return sb.String()
}

func (r *renderer) renderRun(run model.Run) string {
	text := run.Text
	if run.Style.Code {
		return "`" + text + "`"
	}
	if r.opts.EscapeSpecial {
		text = escapeMarkdown(text)
	}
	if run.Style.Strike {
		text = "~~" + text + "~~"
	}
	if run.Style.Underline {
		text = "<u>" + text + "</u>"
	}
	if run.Style.Italic {
		text = "*" + text + "*"
	}
	if run.Style.Bold {
		text = "**" + text + "**"
	}
	if run.Hyperlink != nil {
		text = "[" + text + "](" + *run.Hyperlink + ")"
	}
	return text
}
