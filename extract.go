// Package undoc extracts a unified, renderable document model from DOCX,
// XLSX, and PPTX files (spec.md §1/§2). The package wires together the
// container reader, relationship resolver, format detector, core
// properties reader, the three format-specific parsers, and the
// Markdown/plain-text/JSON renderers behind the public operations
// spec.md §6 lists.
package undoc

import (
	"github.com/iyulab/undoc/pkg/cleanup"
	"github.com/iyulab/undoc/pkg/coreprops"
	"github.com/iyulab/undoc/pkg/detect"
	"github.com/iyulab/undoc/pkg/docxparse"
	"github.com/iyulab/undoc/pkg/jsonrender"
	"github.com/iyulab/undoc/pkg/mdrender"
	"github.com/iyulab/undoc/pkg/model"
	"github.com/iyulab/undoc/pkg/ooxmlerr"
	"github.com/iyulab/undoc/pkg/opc"
	"github.com/iyulab/undoc/pkg/pptxparse"
	"github.com/iyulab/undoc/pkg/textrender"
	"github.com/iyulab/undoc/pkg/xlsxparse"
)

// Re-export the types collaborators need to name without importing pkg/model
// themselves, matching the "one import, one entry point" shape of the
// teacher's own top-level package.
type (
	Document      = model.Document
	Metadata      = model.Metadata
	Resource      = model.Resource
	Section       = model.Section
	ParseOptions  = model.ParseOptions
	RenderOptions = model.RenderOptions
	Diagnostic    = model.Diagnostic
)

const (
	TableMarkdown = model.TableMarkdown
	TableHtml     = model.TableHtml
	TableAscii    = model.TableAscii

	CleanupNone       = model.CleanupNone
	CleanupMinimal    = model.CleanupMinimal
	CleanupStandard   = model.CleanupStandard
	CleanupAggressive = model.CleanupAggressive
)

type formatParser func(c *opc.Container, opts model.ParseOptions) ([]model.Section, map[string]model.Resource, []model.Diagnostic, error)

// ParseFile opens path, detects its OOXML dialect, and decodes it into a
// Document (spec.md §6 parse_file).
func ParseFile(path string, opts ParseOptions) (*Document, error) {
	c, err := opc.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer c.Close()
	return parseContainer(c, path, opts)
}

// ParseBytes decodes an in-memory OOXML package into a Document (spec.md
// §6 parse_bytes).
func ParseBytes(data []byte, opts ParseOptions) (*Document, error) {
	c, err := opc.OpenBytes(data)
	if err != nil {
		return nil, err
	}
	defer c.Close()
	return parseContainer(c, "", opts)
}

func parseContainer(c *opc.Container, srcPath string, opts ParseOptions) (*Document, error) {
	f, err := detect.Detect(c, srcPath)
	if err != nil {
		return nil, err
	}

	var parse formatParser
	var format model.Format
	switch f {
	case detect.Docx:
		parse, format = docxparse.Parse, model.FormatDocx
	case detect.Xlsx:
		parse, format = xlsxparse.Parse, model.FormatXlsx
	case detect.Pptx:
		parse, format = pptxparse.Parse, model.FormatPptx
	default:
		return nil, ooxmlerr.NewUnsupportedFormatError(nil, "undoc: unrecognized OOXML format")
	}

	md, err := coreprops.Read(c)
	if err != nil {
		return nil, err
	}

	sections, resources, diags, err := parse(c, opts)
	if err != nil {
		return nil, err
	}
	if resources == nil {
		resources = map[string]model.Resource{}
	}

	return &Document{
		Format:      format,
		Metadata:    md,
		Sections:    sections,
		Resources:   resources,
		Diagnostics: diags,
	}, nil
}

// ToMarkdown renders doc as Markdown per the given options (spec.md §6
// to_markdown / §4.G).
func ToMarkdown(doc *Document, opts RenderOptions) (string, error) {
	return mdrender.Render(doc, opts)
}

// ToText renders doc as cleaned, unstyled plain text: the PlainText
// rendering with the Standard cleanup preset applied, whatever preset a
// ToMarkdown call would use (spec.md §6 to_text).
func ToText(doc *Document) string {
	return cleanup.Apply(textrender.Render(doc), model.CleanupStandard)
}

// PlainText renders doc as unstyled plain text with no cleanup applied
// (spec.md §6 plain_text).
func PlainText(doc *Document) string {
	return textrender.Render(doc)
}

// ToJSON serializes doc verbatim (spec.md §6 to_json). pretty selects
// two-space indentation with a trailing newline versus compact output.
func ToJSON(doc *Document, pretty bool) (string, error) {
	return jsonrender.Render(doc, pretty)
}

// Sections returns doc's sections in document order (spec.md §6
// sections).
func Sections(doc *Document) []Section {
	return doc.Sections
}

// SectionCount returns the number of sections in doc (spec.md §6
// section_count).
func SectionCount(doc *Document) int {
	return doc.SectionCount()
}

// Resources returns doc's embedded binary assets keyed by resource id
// (spec.md §6 resources).
func Resources(doc *Document) map[string]Resource {
	return doc.Resources
}

// DocMetadata returns doc's core properties (spec.md §6 metadata).
func DocMetadata(doc *Document) Metadata {
	return doc.Metadata
}
