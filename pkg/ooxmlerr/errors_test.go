package ooxmlerr_test

import (
	"errors"
	"testing"

	"github.com/iyulab/undoc/pkg/ooxmlerr"
)

func TestErrorsAsMatchesConcreteType(t *testing.T) {
	cause := errors.New("zip: not a valid zip file")
	err := ooxmlerr.NewMalformedPackageError(cause, "opc: reading %q", "test.docx")

	var target *ooxmlerr.MalformedPackageError
	if !errors.As(err, &target) {
		t.Fatal("expected errors.As to match *MalformedPackageError")
	}

	var wrong *ooxmlerr.IoError
	if errors.As(err, &wrong) {
		t.Error("did not expect errors.As to match an unrelated concrete type")
	}
}

func TestUnwrapReachesCause(t *testing.T) {
	cause := errors.New("underlying failure")
	err := ooxmlerr.NewIoError(cause, "opc: opening %q", "test.docx")

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the wrapped cause")
	}
}

func TestMalformedXmlErrorCarriesPartName(t *testing.T) {
	err := ooxmlerr.NewMalformedXmlError(nil, "word/document.xml", "docxparse: parsing %q", "word/document.xml")
	if err.PartName != "word/document.xml" {
		t.Errorf("PartName = %q, want %q", err.PartName, "word/document.xml")
	}
}

func TestUnknownResourceErrorMessage(t *testing.T) {
	err := ooxmlerr.NewUnknownResourceError("rId99", "word/document.xml")
	if err.RId != "rId99" {
		t.Errorf("RId = %q, want %q", err.RId, "rId99")
	}
	if err.Error() == "" {
		t.Error("expected a non-empty error message")
	}
}
