// Package model is the unified, format-agnostic document model spec.md §3
// describes (component H). A Document is built once by a parser and is
// immutable thereafter: renderers borrow it read-only.
package model

import "time"

// Format tags which OOXML dialect a Document was decoded from.
type Format string

const (
	FormatDocx Format = "docx"
	FormatXlsx Format = "xlsx"
	FormatPptx Format = "pptx"
)

// Metadata holds the optional Dublin Core / OPC core properties (spec.md
// §3). Every field is a pointer so absence is structural rather than a
// sentinel empty string.
type Metadata struct {
	Title            *string
	Author           *string
	Subject          *string
	Description      *string
	Keywords         []string
	Created          *time.Time
	Modified         *time.Time
	CreatorApp       *string
}

// Resource is a binary asset embedded in the source package (spec.md §3).
// ResourceID is the normalized relationship target and is globally unique
// within a Document.
type Resource struct {
	ResourceID   string
	MimeType     string
	FilenameHint string
	PartPath     string
	Bytes        []byte
}

// SuggestedFilename derives a filename for this resource with a
// mime-correct extension: when MimeType is known, any extension on
// FilenameHint is replaced (or one is added); otherwise FilenameHint is
// returned unchanged. This is the collaborator-facing hint spec.md §6 describes
// ("Persisted/produced formats"); undoc itself never writes files.
func (r Resource) SuggestedFilename() string {
	if ext := extensionForMime(r.MimeType); ext != "" {
		base := trimKnownExt(r.FilenameHint)
		return base + ext
	}
	return r.FilenameHint
}

var mimeExt = map[string]string{
	"image/png":     ".png",
	"image/jpeg":    ".jpg",
	"image/gif":     ".gif",
	"image/bmp":     ".bmp",
	"image/tiff":    ".tiff",
	"image/x-emf":   ".emf",
	"image/x-wmf":   ".wmf",
	"image/svg+xml": ".svg",
}

func extensionForMime(mime string) string {
	return mimeExt[mime]
}

func trimKnownExt(name string) string {
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' {
			return name[:i]
		}
		if name[i] == '/' {
			break
		}
	}
	return name
}

// ListKind distinguishes ordered from unordered list paragraphs.
type ListKind int

const (
	ListNone ListKind = iota
	ListOrdered
	ListUnordered
)

// ListContext describes a paragraph's position in a list, per spec.md §3.
type ListContext struct {
	Kind  ListKind
	Depth int // 0..8
	Start int // start index, meaningful only for ListOrdered
}

// RunStyle is the set of inline character styles a Run carries (spec.md
// §3). Fields are booleans, not a bitmask, since they compose freely and
// the model is read far more often than constructed.
type RunStyle struct {
	Bold         bool
	Italic       bool
	Underline    bool
	Strike       bool
	Code         bool
	Subscript    bool
	Superscript  bool
}

// Run is the smallest unit of text in the model: a string plus its style
// and an optional hyperlink target. Run.Text never contains a newline
// (spec.md invariant 3) — a line break always splits the run list.
type Run struct {
	Text      string
	Style     RunStyle
	Hyperlink *string // destination URL, nil if not a link
}

// ImageRef is a standalone image reference attached to a Paragraph.
type ImageRef struct {
	ResourceID string
	AltText    string
}

// BlockKind is the set of BlockElement variants (spec.md §3), listed by
// the constants below. BlockElement is a single struct tagged by Kind;
// its unexported isBlockElement method does not by itself stop another
// package from storing a BlockKind value outside this list.
type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockTable
	BlockImage
	BlockSpeakerNotes
	BlockPageBreak
	BlockSeparator
)

// BlockElement is a tagged variant over the block-level content spec.md
// §3 defines. Exactly the fields relevant to Kind are populated; the rest
// are zero. Construct BlockElement values directly (NewParagraph-style
// helpers below) rather than setting Kind by hand.
type BlockElement struct {
	Kind BlockKind

	// BlockParagraph
	OutlineLevel int // 0-9; 0 = body
	Runs         []Run
	Images       []ImageRef
	List         *ListContext

	// BlockTable
	Table *Table

	// BlockImage (standalone, not inline in a paragraph)
	Image *ImageRef

	// BlockSpeakerNotes
	NoteRuns []Run
}

func (BlockElement) isBlockElement() {}

// NewParagraph constructs a BlockParagraph.
func NewParagraph(outline int, runs []Run) BlockElement {
	return BlockElement{Kind: BlockParagraph, OutlineLevel: outline, Runs: runs}
}

// NewImageBlock constructs a standalone BlockImage.
func NewImageBlock(resourceID, alt string) BlockElement {
	img := ImageRef{ResourceID: resourceID, AltText: alt}
	return BlockElement{Kind: BlockImage, Image: &img}
}

// NewSpeakerNotes constructs a BlockSpeakerNotes.
func NewSpeakerNotes(runs []Run) BlockElement {
	return BlockElement{Kind: BlockSpeakerNotes, NoteRuns: runs}
}

// NewPageBreak constructs a BlockPageBreak.
func NewPageBreak() BlockElement { return BlockElement{Kind: BlockPageBreak} }

// NewSeparator constructs a BlockSeparator.
func NewSeparator() BlockElement { return BlockElement{Kind: BlockSeparator} }

// NewTableBlock wraps a Table in a BlockElement.
func NewTableBlock(t *Table) BlockElement {
	return BlockElement{Kind: BlockTable, Table: t}
}

// Cell is one cell of a Table grid (spec.md §3). Blocks is recursive:
// a cell may itself contain paragraphs, nested tables, or images.
type Cell struct {
	RowSpan int
	ColSpan int
	Blocks  []BlockElement
}

// Table is a 2-D grid of Cells (spec.md §3 invariant 4: every row's
// column spans sum to Width).
type Table struct {
	HeaderRow bool
	Width     int
	Rows      [][]Cell
}

// Section is a coherent top-level unit: a DOCX logical section break
// group, one XLSX sheet, or one PPTX slide (spec.md §3).
type Section struct {
	Name   *string
	Blocks []BlockElement
}

// ParseOptions configures the three format parsers. The zero value is
// strict mode with hidden sheets skipped, matching spec.md §4.E/§7
// defaults.
type ParseOptions struct {
	// Lenient converts a per-section XML parse failure into a recorded
	// Diagnostic instead of a fatal MalformedXmlError (spec.md §7).
	Lenient bool
	// IncludeHiddenSheets overrides the default XLSX behavior of
	// skipping sheets with state="hidden" (spec.md §4.E).
	IncludeHiddenSheets bool
}

// Diagnostic records a section/sheet/slide dropped in lenient mode
// (spec.md §7). Populated only when ParseOptions.Lenient is true.
type Diagnostic struct {
	SectionIndex int
	PartName     string
	Err          error
}

// TableMode selects the fallback table representation mdrender uses once
// a table has a spanning cell (spec.md §4.G).
type TableMode int

const (
	TableMarkdown TableMode = iota
	TableHtml
	TableAscii
)

// CleanupPreset selects which of the four cleanup stages run (spec.md
// §4.I).
type CleanupPreset int

const (
	CleanupNone CleanupPreset = iota
	CleanupMinimal
	CleanupStandard
	CleanupAggressive
)

// RenderOptions configures the Markdown renderer (spec.md §4.G). The zero
// value renders plain Markdown with no frontmatter, no escaping, single
// blank lines between blocks, Markdown-mode tables, and max_heading=6.
type RenderOptions struct {
	Frontmatter      bool
	EscapeSpecial    bool
	ParagraphSpacing bool
	TableMode        TableMode
	CleanupPreset    CleanupPreset
	MaxHeading       int // 1..6; 0 means "use the default of 6"
}

// Document is the immutable result of one parse call (spec.md §3). Once
// constructed it is never mutated: renderers are pure functions of it.
type Document struct {
	Format      Format
	Metadata    Metadata
	Sections    []Section
	Resources   map[string]Resource // resource_id -> Resource
	Diagnostics []Diagnostic
}

// SectionCount returns the number of sections, mirroring the section_count
// public operation in spec.md §6.
func (d *Document) SectionCount() int { return len(d.Sections) }
