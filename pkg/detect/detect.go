// Package detect implements spec.md component D: deciding whether an
// opened OOXML container is a DOCX, XLSX, or PPTX.
package detect

import (
	"path/filepath"
	"strings"

	"github.com/beevik/etree"

	"github.com/iyulab/undoc/pkg/ooxmlerr"
	"github.com/iyulab/undoc/pkg/opc"
)

// Format identifies which of the three OOXML dialects a Document was
// decoded from.
type Format int

const (
	Unknown Format = iota
	Docx
	Xlsx
	Pptx
)

func (f Format) String() string {
	switch f {
	case Docx:
		return "docx"
	case Xlsx:
		return "xlsx"
	case Pptx:
		return "pptx"
	default:
		return "unknown"
	}
}

// mainContentType maps the single Override content type that fixes the
// format, per spec.md §4.C step 2.
var mainContentType = map[string]Format{
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml": Docx,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet.main+xml":        Xlsx,
	"application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml": Pptx,
}

var extensionFallback = map[string]Format{
	".docx": Docx,
	".xlsx": Xlsx,
	".pptx": Pptx,
}

const contentTypesPart = "[Content_Types].xml"

// Detect determines the format of an already-opened container. srcPath is
// the original file path if known (used only for the extension fallback
// in step 3); pass "" when detecting from in-memory bytes.
func Detect(c *opc.Container, srcPath string) (Format, error) {
	if !c.HasPart(contentTypesPart) {
		return fallbackByExtension(srcPath)
	}
	data, err := c.ReadPart(contentTypesPart)
	if err != nil {
		return fallbackByExtension(srcPath)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return Unknown, ooxmlerr.NewMalformedXmlError(err, contentTypesPart, "detect: parsing %q", contentTypesPart)
	}
	root := doc.Root()
	if root == nil {
		return fallbackByExtension(srcPath)
	}

	for _, override := range root.FindElements("Override") {
		ct := override.SelectAttrValue("ContentType", "")
		if f, ok := mainContentType[ct]; ok {
			return f, nil
		}
	}
	return fallbackByExtension(srcPath)
}

func fallbackByExtension(srcPath string) (Format, error) {
	if srcPath == "" {
		return Unknown, ooxmlerr.NewUnsupportedFormatError(nil, "detect: no main-part content-type override and no path to fall back on")
	}
	ext := strings.ToLower(filepath.Ext(srcPath))
	if f, ok := extensionFallback[ext]; ok {
		return f, nil
	}
	return Unknown, ooxmlerr.NewUnsupportedFormatError(nil, "detect: unrecognized format (content type missing, extension %q unknown)", ext)
}
