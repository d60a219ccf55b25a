// Package coreprops implements spec.md component C: reading
// docProps/core.xml (Dublin Core + OPC core properties) into the model's
// Metadata type.
package coreprops

import (
	"strings"
	"time"

	"github.com/beevik/etree"

	"github.com/iyulab/undoc/pkg/model"
	"github.com/iyulab/undoc/pkg/ooxmlerr"
	"github.com/iyulab/undoc/pkg/opc"
)

const partName = "docProps/core.xml"

// Read parses docProps/core.xml, if present, into a Metadata value. A
// missing part yields a zero-value Metadata rather than an error —
// core.xml is not required by spec.md for any of the three formats.
func Read(c *opc.Container) (model.Metadata, error) {
	if !c.HasPart(partName) {
		return model.Metadata{}, nil
	}
	data, err := c.ReadPart(partName)
	if err != nil {
		return model.Metadata{}, nil
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return model.Metadata{}, ooxmlerr.NewMalformedXmlError(err, partName, "coreprops: parsing %q", partName)
	}
	root := doc.Root()
	if root == nil {
		return model.Metadata{}, nil
	}

	md := model.Metadata{}
	md.Title = textPtr(root, "title")
	md.Author = textPtr(root, "creator")
	md.Subject = textPtr(root, "subject")
	md.Description = textPtr(root, "description")
	if kw := elementText(root, "keywords"); kw != "" {
		md.Keywords = splitKeywords(kw)
	}
	md.Created = timePtr(root, "created")
	md.Modified = timePtr(root, "modified")
	md.CreatorApp = textPtr(root, "lastModifiedBy")
	return md, nil
}

// textPtr returns a pointer to the trimmed text content of the first
// direct child of root whose local name is local, or nil if absent or
// empty — absence is modeled explicitly per spec.md §3.
func textPtr(root *etree.Element, local string) *string {
	v := elementText(root, local)
	if v == "" {
		return nil
	}
	return &v
}

func elementText(root *etree.Element, local string) string {
	el := root.FindElement(local)
	if el == nil {
		return ""
	}
	return strings.TrimSpace(el.Text())
}

func timePtr(root *etree.Element, local string) *time.Time {
	v := elementText(root, local)
	if v == "" {
		return nil
	}
	// dcterms:created/modified are W3CDTF, almost always RFC3339.
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05Z07", "2006-01-02"} {
		if t, err := time.Parse(layout, v); err == nil {
			return &t
		}
	}
	return nil
}

func splitKeywords(v string) []string {
	fields := strings.FieldsFunc(v, func(r rune) bool {
		return r == ',' || r == ';'
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}
