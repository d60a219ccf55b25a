// Package jsonrender implements spec.md component K: emitting a
// model.Document verbatim as JSON with stable field names. Built on
// encoding/json rather than a third-party codec — the model is a plain
// tree of exported structs with no custom marshaling needs, exactly the
// case the standard library's reflection-based encoder handles well.
package jsonrender

import (
	"bytes"
	"encoding/json"

	"github.com/iyulab/undoc/pkg/model"
)

// Render serializes doc to JSON. Pretty mode two-space-indents and ends
// with a trailing newline, per spec.md §4.H.
func Render(doc *model.Document, pretty bool) (string, error) {
	var data []byte
	var err error
	if pretty {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return "", err
	}
	if pretty {
		var buf bytes.Buffer
		buf.Write(data)
		buf.WriteByte('\n')
		return buf.String(), nil
	}
	return string(data), nil
}
