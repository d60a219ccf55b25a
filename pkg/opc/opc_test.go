package opc_test

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/iyulab/undoc/pkg/opc"
)

func TestJoinPart(t *testing.T) {
	tests := []struct {
		owningPart, target, want string
	}{
		{"word/document.xml", "media/image1.png", "word/media/image1.png"},
		{"word/document.xml", "styles.xml", "word/styles.xml"},
		{"word/_rels/document.xml.rels", "../media/image1.png", "word/media/image1.png"},
		{"[Content_Types].xml", "word/document.xml", "word/document.xml"},
	}
	for _, tt := range tests {
		got := opc.JoinPart(tt.owningPart, tt.target)
		if got != tt.want {
			t.Errorf("JoinPart(%q, %q) = %q, want %q", tt.owningPart, tt.target, got, tt.want)
		}
	}
}

func TestRelsPathFor(t *testing.T) {
	tests := []struct {
		owningPart, want string
	}{
		{"word/document.xml", "word/_rels/document.xml.rels"},
		{"[Content_Types].xml", "_rels/[Content_Types].xml.rels"},
		{"xl/worksheets/sheet1.xml", "xl/worksheets/_rels/sheet1.xml.rels"},
	}
	for _, tt := range tests {
		got := opc.RelsPathFor(tt.owningPart)
		if got != tt.want {
			t.Errorf("RelsPathFor(%q) = %q, want %q", tt.owningPart, got, tt.want)
		}
	}
}

func TestOpenBytesRejectsNonZip(t *testing.T) {
	if _, err := opc.OpenBytes([]byte("not a zip")); err == nil {
		t.Error("expected error for non-ZIP input, got nil")
	}
}

func TestContainerReadPart(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("creating entry: %v", err)
	}
	if _, err := w.Write([]byte("<root/>")); err != nil {
		t.Fatalf("writing entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing zip: %v", err)
	}

	c, err := opc.OpenBytes(buf.Bytes())
	if err != nil {
		t.Fatalf("OpenBytes: %v", err)
	}
	defer c.Close()

	if !c.HasPart("word/document.xml") {
		t.Error("expected HasPart true for word/document.xml")
	}
	data, err := c.ReadPart("word/document.xml")
	if err != nil {
		t.Fatalf("ReadPart: %v", err)
	}
	if string(data) != "<root/>" {
		t.Errorf("ReadPart = %q, want %q", data, "<root/>")
	}
	if _, err := c.ReadPart("missing.xml"); err == nil {
		t.Error("expected error reading a missing part, got nil")
	}
}

func TestLoadRelationshipsMissingFileIsEmpty(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	if _, err := zw.Create("word/document.xml"); err != nil {
		t.Fatalf("creating entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing zip: %v", err)
	}
	c, err := opc.OpenBytes(buf.Bytes())
	if err != nil {
		t.Fatalf("OpenBytes: %v", err)
	}
	defer c.Close()

	rels, err := opc.LoadRelationships(c, "word/document.xml")
	if err != nil {
		t.Fatalf("LoadRelationships: %v", err)
	}
	if _, ok := rels.Get("rId1"); ok {
		t.Error("expected no relationship in an empty lookup")
	}
}
