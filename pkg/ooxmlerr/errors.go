// Package ooxmlerr is the error taxonomy shared by every layer of undoc
// (spec.md §4.M / §7): the container, relationship resolver, and the
// three format parsers return these concrete types so callers can use
// errors.As to branch on failure kind instead of matching strings.
package ooxmlerr

import "fmt"

// CoreError is the base type every error in this package embeds. It
// implements Unwrap so errors.Is / errors.As traverse the chain down to
// whatever underlying error (a zip.ErrFormat, an etree parse error, an
// os.PathError) caused the failure.
type CoreError struct {
	msg   string
	cause error
}

func (e *CoreError) Error() string { return e.msg }
func (e *CoreError) Unwrap() error { return e.cause }

func newCoreError(cause error, format string, args ...any) CoreError {
	return CoreError{msg: fmt.Sprintf(format, args...), cause: cause}
}

// UnsupportedFormatError: input is not a ZIP, or its main content type is
// not one of the three recognized OOXML formats. Always fatal.
type UnsupportedFormatError struct{ CoreError }

func NewUnsupportedFormatError(cause error, format string, args ...any) *UnsupportedFormatError {
	return &UnsupportedFormatError{newCoreError(cause, format, args...)}
}

// IoError: the file is missing, unreadable, or truncated mid-read. Fatal.
type IoError struct{ CoreError }

func NewIoError(cause error, format string, args ...any) *IoError {
	return &IoError{newCoreError(cause, format, args...)}
}

// MalformedPackageError: ZIP central-directory corruption, or a required
// part (e.g. [Content_Types].xml, or the declared main part) is missing.
// Fatal.
type MalformedPackageError struct{ CoreError }

func NewMalformedPackageError(cause error, format string, args ...any) *MalformedPackageError {
	return &MalformedPackageError{newCoreError(cause, format, args...)}
}

// MalformedXmlError: an XML part failed to parse. Fatal in strict mode;
// in lenient mode the offending section/sheet/slide is dropped and the
// index is recorded as a Diagnostic instead (see the root package).
type MalformedXmlError struct {
	CoreError
	PartName string
}

func NewMalformedXmlError(cause error, partName string, format string, args ...any) *MalformedXmlError {
	return &MalformedXmlError{newCoreError(cause, format, args...), partName}
}

// UnknownResourceError: a referenced relationship id has no entry in the
// owning part's rels. Never fatal — the image is omitted and the
// surrounding paragraph still renders.
type UnknownResourceError struct {
	CoreError
	RId string
}

func NewUnknownResourceError(rID string, partName string) *UnknownResourceError {
	return &UnknownResourceError{
		newCoreError(nil, "undoc: relationship id %q not found in %q", rID, partName),
		rID,
	}
}

// RenderError exists for completeness of the taxonomy; no renderer in
// undoc produces it.
type RenderError struct{ CoreError }

func NewRenderError(cause error, format string, args ...any) *RenderError {
	return &RenderError{newCoreError(cause, format, args...)}
}
