package opc

import (
	"path"
	"strings"

	"github.com/beevik/etree"

	"github.com/iyulab/undoc/pkg/ooxmlerr"
)

// RelKind classifies a relationship by its Type URI's trailing segment,
// per spec.md §4.B.
type RelKind string

const (
	RelImage     RelKind = "image"
	RelHyperlink RelKind = "hyperlink"
	RelSheet     RelKind = "sheet"
	RelSlide     RelKind = "slide"
	RelNotes     RelKind = "notes"
	RelStyle     RelKind = "style"
	RelTheme     RelKind = "theme"
	RelOther     RelKind = "other"
)

// relKindBySuffix maps the final path segment of a relationship Type URI
// (e.g. ".../relationships/image" -> "image") to its RelKind.
var relKindBySuffix = map[string]RelKind{
	"image":            RelImage,
	"hyperlink":        RelHyperlink,
	"worksheet":        RelSheet,
	"slide":            RelSlide,
	"notesSlide":       RelNotes,
	"styles":           RelStyle,
	"theme":            RelTheme,
}

func classify(relType string) RelKind {
	idx := strings.LastIndex(relType, "/")
	suffix := relType
	if idx >= 0 {
		suffix = relType[idx+1:]
	}
	if k, ok := relKindBySuffix[suffix]; ok {
		return k
	}
	return RelOther
}

// Relationship is one resolved <Relationship> entry.
type Relationship struct {
	Id       string
	Kind     RelKind
	Type     string
	Target   string // absolute part name, or the raw external URL
	External bool
}

// Relationships is the rId -> Relationship lookup for a single owning
// part, built once and never re-parsed (spec.md §9 "Relationship
// resolution is done once per owning part, eagerly").
type Relationships struct {
	byID map[string]Relationship
}

// emptyRelationships is returned whenever an owning part has no .rels
// sidecar: spec.md §4.B says this is not fatal, just an empty lookup.
func emptyRelationships() *Relationships {
	return &Relationships{byID: map[string]Relationship{}}
}

// RelsPathFor returns the `_rels/*.rels` path for a given owning part,
// e.g. "word/document.xml" -> "word/_rels/document.xml.rels".
func RelsPathFor(owningPart string) string {
	dir := path.Dir(owningPart)
	base := path.Base(owningPart)
	if dir == "." {
		return "_rels/" + base + ".rels"
	}
	return dir + "/_rels/" + base + ".rels"
}

// LoadRelationships reads and parses the relationships file for
// owningPart, if present. A missing file yields an empty (non-error)
// lookup, per spec.md §4.B.
func LoadRelationships(c *Container, owningPart string) (*Relationships, error) {
	relsPath := RelsPathFor(owningPart)
	if !c.HasPart(relsPath) {
		return emptyRelationships(), nil
	}
	data, err := c.ReadPart(relsPath)
	if err != nil {
		return emptyRelationships(), nil
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, ooxmlerr.NewMalformedXmlError(err, relsPath, "opc: parsing relationships %q", relsPath)
	}
	root := doc.Root()
	if root == nil {
		return emptyRelationships(), nil
	}

	rels := &Relationships{byID: make(map[string]Relationship, len(root.ChildElements()))}
	for _, el := range root.ChildElements() {
		if el.Tag != "Relationship" {
			continue
		}
		id := el.SelectAttrValue("Id", "")
		relType := el.SelectAttrValue("Type", "")
		target := el.SelectAttrValue("Target", "")
		mode := el.SelectAttrValue("TargetMode", "")
		external := strings.EqualFold(mode, "External")
		if id == "" {
			continue
		}

		resolved := target
		if !external {
			resolved = JoinPart(owningPart, target)
		}
		rels.byID[id] = Relationship{
			Id:       id,
			Kind:     classify(relType),
			Type:     relType,
			Target:   resolved,
			External: external,
		}
	}
	return rels, nil
}

// Get looks up a relationship by rId.
func (r *Relationships) Get(rID string) (Relationship, bool) {
	if r == nil {
		return Relationship{}, false
	}
	rel, ok := r.byID[rID]
	return rel, ok
}

// All returns every relationship, unordered.
func (r *Relationships) All() []Relationship {
	if r == nil {
		return nil
	}
	out := make([]Relationship, 0, len(r.byID))
	for _, rel := range r.byID {
		out = append(out, rel)
	}
	return out
}
