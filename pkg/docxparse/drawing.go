package docxparse

import (
	"path"

	"github.com/beevik/etree"

	"github.com/iyulab/undoc/internal/mimetype"
	"github.com/iyulab/undoc/pkg/model"
)

// blipRef extracts the embedded-image relationship id and alt text from a
// <w:drawing>, per spec.md §4.D: "extract embedded <a:blip r:embed=rIdX/>;
// ... alt text from <wp:docPr descr=.../>". Returns ok=false if the
// drawing has no blip (e.g. it's a chart or shape with no raster image).
func blipRef(drawing *etree.Element) (rID string, alt string, ok bool) {
	blip := findDescendant(drawing, "blip")
	if blip == nil {
		return "", "", false
	}
	rID = blip.SelectAttrValue("embed", "")
	if rID == "" {
		return "", "", false
	}
	if docPr := findDescendant(drawing, "docPr"); docPr != nil {
		alt = docPr.SelectAttrValue("descr", "")
	}
	return rID, alt, true
}

// findDescendant does a depth-first search for the first descendant
// element with the given local tag name.
func findDescendant(e *etree.Element, local string) *etree.Element {
	for _, child := range e.ChildElements() {
		if child.Tag == local {
			return child
		}
		if found := findDescendant(child, local); found != nil {
			return found
		}
	}
	return nil
}

// resolveImage turns a relationship id into an ImageRef, loading the
// target media bytes into p.resources on first reference. A rId with no
// entry in the owning part's rels yields ok=false — spec.md §7 treats
// this as the non-fatal UnknownResourceError: the image is simply
// omitted, the paragraph still renders.
func (p *paragraphWalker) resolveImage(rID, alt string) (model.ImageRef, bool) {
	rel, ok := p.rels.Get(rID)
	if !ok || rel.External {
		return model.ImageRef{}, false
	}
	if _, loaded := p.resources[rel.Target]; !loaded {
		data, err := p.container.ReadPart(rel.Target)
		if err != nil {
			return model.ImageRef{}, false
		}
		p.resources[rel.Target] = model.Resource{
			ResourceID:   rel.Target,
			MimeType:     mimetype.ForPart(rel.Target),
			FilenameHint: path.Base(rel.Target),
			PartPath:     rel.Target,
			Bytes:        data,
		}
	}
	return model.ImageRef{ResourceID: rel.Target, AltText: alt}, true
}
