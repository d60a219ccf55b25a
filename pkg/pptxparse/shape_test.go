package pptxparse

import "testing"

func TestFindTitleShapePrefersPlaceholder(t *testing.T) {
	spTree := mustParseElement(t, `<spTree>
  <sp>
    <nvSpPr><nvPr><ph type="body"/></nvPr></nvSpPr>
    <txBody><p><pPr algn="ctr"/><r><t>not the title</t></r></p></txBody>
  </sp>
  <sp>
    <nvSpPr><nvPr><ph type="title"/></nvPr></nvSpPr>
    <txBody><p><r><t>Real Title</t></r></p></txBody>
  </sp>
</spTree>`)
	title := findTitleShape(spTree)
	if title == nil {
		t.Fatal("expected a title shape")
	}
	if got := shapeText(title); got == nil || *got != "Real Title" {
		t.Errorf("title text = %v, want %q", got, "Real Title")
	}
}

func TestFindTitleShapeFallsBackToCenteredText(t *testing.T) {
	spTree := mustParseElement(t, `<spTree>
  <sp>
    <txBody><p><pPr algn="l"/><r><t>left aligned</t></r></p></txBody>
  </sp>
  <sp>
    <txBody><p><pPr algn="ctr"/><r><t>Centered Heading</t></r></p></txBody>
  </sp>
</spTree>`)
	title := findTitleShape(spTree)
	if title == nil {
		t.Fatal("expected the centered shape to be picked as a fallback title")
	}
	if got := shapeText(title); got == nil || *got != "Centered Heading" {
		t.Errorf("title text = %v, want %q", got, "Centered Heading")
	}
}

func TestFindTitleShapeNoneWhenNoPlaceholderOrCentering(t *testing.T) {
	spTree := mustParseElement(t, `<spTree>
  <sp>
    <txBody><p><pPr algn="l"/><r><t>left aligned</t></r></p></txBody>
  </sp>
</spTree>`)
	if title := findTitleShape(spTree); title != nil {
		t.Errorf("expected nil title, got a shape with text %v", shapeText(title))
	}
}
