package pptxparse

import (
	"testing"

	"github.com/beevik/etree"
)

func mustParseElement(t *testing.T, xml string) *etree.Element {
	t.Helper()
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes([]byte(xml)); err != nil {
		t.Fatalf("parsing test XML: %v", err)
	}
	return doc.Root()
}

func TestDecodeRunPropsAttributeBooleans(t *testing.T) {
	style := decodeRunProps(mustParseElement(t, `<rPr b="1" i="1" strike="sngStrike" u="sng"/>`))
	if !style.Bold || !style.Italic || !style.Strike || !style.Underline {
		t.Errorf("expected all styles set, got %+v", style)
	}

	off := decodeRunProps(mustParseElement(t, `<rPr b="0" strike="noStrike" u="none"/>`))
	if off.Bold || off.Strike || off.Underline {
		t.Errorf("expected all styles unset, got %+v", off)
	}
}

func TestDecodeRunPropsBaselineSuperSubscript(t *testing.T) {
	super := decodeRunProps(mustParseElement(t, `<rPr baseline="30000"/>`))
	if !super.Superscript || super.Subscript {
		t.Errorf("expected Superscript for positive baseline, got %+v", super)
	}

	sub := decodeRunProps(mustParseElement(t, `<rPr baseline="-25000"/>`))
	if !sub.Subscript || sub.Superscript {
		t.Errorf("expected Subscript for negative baseline, got %+v", sub)
	}
}

func TestParsePercent(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOk bool
	}{
		{"30000", 30000, true},
		{"-25000", -25000, true},
		{"+100", 100, true},
		{"", 0, false},
		{"abc", 0, false},
		{"-", 0, false},
	}
	for _, tt := range tests {
		got, ok := parsePercent(tt.in)
		if ok != tt.wantOk {
			t.Errorf("parsePercent(%q) ok = %v, want %v", tt.in, ok, tt.wantOk)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("parsePercent(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestDecodeRunText(t *testing.T) {
	r := mustParseElement(t, `<r><rPr b="1"/><t>hello</t></r>`)
	run := decodeRun(r, nil)
	if run.Text != "hello" {
		t.Errorf("Text = %q, want %q", run.Text, "hello")
	}
	if !run.Style.Bold {
		t.Error("expected Bold true")
	}
}

func TestHyperlinkID(t *testing.T) {
	rPr := mustParseElement(t, `<rPr><hlinkClick r:id="rId3"/></rPr>`)
	if got := hyperlinkID(rPr); got != "rId3" {
		t.Errorf("hyperlinkID = %q, want %q", got, "rId3")
	}

	if got := hyperlinkID(nil); got != "" {
		t.Errorf("hyperlinkID(nil) = %q, want empty", got)
	}
}
