// Package opc implements the OOXML container and relationship resolver:
// spec.md components A and B. It projects a ZIP package into a set of
// named parts addressable by path, and resolves each owning part's
// `_rels/*.rels` sidecar into an rId lookup.
package opc

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path"
	"strings"

	"github.com/iyulab/undoc/pkg/ooxmlerr"
)

// zipMagic is the local-file-header signature every ZIP archive starts
// with. Anything else is rejected before we ever hand bytes to
// archive/zip, so malformed non-ZIP input fails fast with a clear error
// instead of a cryptic zip.ErrFormat.
var zipMagic = []byte{0x50, 0x4B, 0x03, 0x04}

// Container gives random access to the named parts of an OOXML ZIP
// package. It is read-only after construction: the underlying
// *zip.Reader is safe for concurrent ReadPart calls because each call
// opens a fresh io.ReadCloser over the shared central directory rather
// than sharing a cursor, so multiple logical readers (e.g. parallel
// section parsers) can pull different parts at once.
type Container struct {
	zr    *zip.Reader
	files map[string]*zip.File // normalized name -> entry
	names []string             // original archive order
	close func() error         // nil for in-memory containers
}

// OpenFile opens an OOXML container from a filesystem path.
func OpenFile(path string) (*Container, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ooxmlerr.NewIoError(err, "opc: opening %q", path)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, ooxmlerr.NewIoError(err, "opc: stat %q", path)
	}
	c, err := openReaderAt(f, info.Size())
	if err != nil {
		f.Close()
		return nil, err
	}
	c.close = f.Close
	return c, nil
}

// OpenBytes opens an OOXML container from an in-memory byte slice.
func OpenBytes(data []byte) (*Container, error) {
	r := bytes.NewReader(data)
	return openReaderAt(r, int64(len(data)))
}

func openReaderAt(r io.ReaderAt, size int64) (*Container, error) {
	magic := make([]byte, 4)
	if n, err := r.ReadAt(magic, 0); err != nil && err != io.EOF || n < 4 {
		return nil, ooxmlerr.NewUnsupportedFormatError(nil, "opc: input is not a recognizable ZIP format (too short)")
	}
	if !bytes.Equal(magic, zipMagic) {
		return nil, ooxmlerr.NewUnsupportedFormatError(nil, "opc: input is not a recognizable ZIP format")
	}

	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, ooxmlerr.NewMalformedPackageError(err, "opc: reading ZIP central directory")
	}

	c := &Container{
		zr:    zr,
		files: make(map[string]*zip.File, len(zr.File)),
	}
	for _, f := range zr.File {
		name := normalizePartName(f.Name)
		c.files[name] = f
		c.names = append(c.names, name)
	}
	return c, nil
}

// normalizePartName forces forward slashes and strips a leading slash, so
// lookups are consistent regardless of how the archive entry was written.
// Names stay case-sensitive per spec.md §4.A.
func normalizePartName(name string) string {
	name = strings.ReplaceAll(name, `\`, "/")
	return strings.TrimPrefix(name, "/")
}

// ListParts returns every part name in the container, in archive order.
func (c *Container) ListParts() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// HasPart reports whether name exists in the container.
func (c *Container) HasPart(name string) bool {
	_, ok := c.files[normalizePartName(name)]
	return ok
}

// ReadPart returns the decompressed bytes of the named part.
func (c *Container) ReadPart(name string) ([]byte, error) {
	f, ok := c.files[normalizePartName(name)]
	if !ok {
		return nil, ooxmlerr.NewIoError(nil, "opc: part %q not found", name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, ooxmlerr.NewMalformedPackageError(err, "opc: opening part %q", name)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, ooxmlerr.NewIoError(err, "opc: reading part %q", name)
	}
	return data, nil
}

// Close releases any underlying OS file handle. Safe to call on a
// container opened from bytes (no-op).
func (c *Container) Close() error {
	if c.close == nil {
		return nil
	}
	return c.close()
}

// JoinPart resolves a relationship target (relative to the directory of
// owningPart) into an absolute, normalized part name: "." and ".." are
// collapsed segment-wise per spec.md §4.B.
func JoinPart(owningPart, target string) string {
	dir := path.Dir(normalizePartName(owningPart))
	if dir == "." {
		dir = ""
	}
	joined := path.Join(dir, target)
	return normalizePartName(joined)
}
