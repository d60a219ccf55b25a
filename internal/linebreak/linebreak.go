// Package linebreak provides the sentinel Run both WordprocessingML and
// DrawingML run decoders use to signal "split the paragraph here",
// since spec.md forbids a newline inside a single Run's text.
package linebreak

import "github.com/iyulab/undoc/pkg/model"

// Marker is never rendered directly; callers split a decoded run list on
// it and discard it.
var Marker = model.Run{Text: "\x00undoc-linebreak\x00"}

// Is reports whether r is the split-here sentinel.
func Is(r model.Run) bool {
	return r.Text == Marker.Text
}
