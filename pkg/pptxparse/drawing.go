package pptxparse

import (
	"path"

	"github.com/beevik/etree"

	"github.com/iyulab/undoc/internal/mimetype"
	"github.com/iyulab/undoc/pkg/model"
)

// picBlip extracts the embedded-image relationship id and alt text from a
// <p:pic> shape, per spec.md §4.F: "Images: <p:pic>/<p:blipFill><a:blip
// r:embed> -> resource".
func picBlip(pic *etree.Element) (rID string, alt string, ok bool) {
	blipFill := pic.FindElement("blipFill")
	if blipFill == nil {
		return "", "", false
	}
	blip := blipFill.FindElement("blip")
	if blip == nil {
		return "", "", false
	}
	rID = blip.SelectAttrValue("embed", "")
	if rID == "" {
		return "", "", false
	}
	if nvPicPr := pic.FindElement("nvPicPr"); nvPicPr != nil {
		if cNvPr := nvPicPr.FindElement("cNvPr"); cNvPr != nil {
			alt = cNvPr.SelectAttrValue("descr", "")
		}
	}
	return rID, alt, true
}

// resolveImage resolves a relationship id into an ImageRef, loading the
// target media bytes into w.resources on first reference. A dangling rId
// is treated the same non-fatal way docxparse treats it: the image is
// simply omitted.
func (w *slideWalker) resolveImage(rID, alt string) (model.ImageRef, bool) {
	rel, ok := w.rels.Get(rID)
	if !ok || rel.External {
		return model.ImageRef{}, false
	}
	if _, loaded := w.resources[rel.Target]; !loaded {
		data, err := w.container.ReadPart(rel.Target)
		if err != nil {
			return model.ImageRef{}, false
		}
		w.resources[rel.Target] = model.Resource{
			ResourceID:   rel.Target,
			MimeType:     mimetype.ForPart(rel.Target),
			FilenameHint: path.Base(rel.Target),
			PartPath:     rel.Target,
			Bytes:        data,
		}
	}
	return model.ImageRef{ResourceID: rel.Target, AltText: alt}, true
}
