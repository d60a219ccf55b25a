// Package mimetype maps OOXML media part extensions to MIME types, shared
// by every format parser that extracts embedded images.
package mimetype

import (
	"path"
	"strings"
)

var byExtension = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".bmp":  "image/bmp",
	".tif":  "image/tiff",
	".tiff": "image/tiff",
	".emf":  "image/x-emf",
	".wmf":  "image/x-wmf",
	".svg":  "image/svg+xml",
}

// ForPart returns the MIME type for a part path based on its extension,
// falling back to "application/octet-stream" for anything unrecognized.
func ForPart(partPath string) string {
	ext := strings.ToLower(path.Ext(partPath))
	if m, ok := byExtension[ext]; ok {
		return m
	}
	return "application/octet-stream"
}
