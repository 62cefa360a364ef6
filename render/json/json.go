// Package json renders reports as JSON (serializes the report as-is).
package json

import (
	"encoding/json"
	"io"

	"github.com/sonnes/chatroast/core"
)

// Renderer renders a report to JSON.
type Renderer struct {
	// Indent controls pretty-printing. When true, output is indented.
	Indent bool
}

// New creates a JSON Renderer with indentation enabled.
func New() *Renderer {
	return &Renderer{Indent: true}
}

// Render writes the report as JSON to w.
func (r *Renderer) Render(w io.Writer, rep *core.StatsReport) error {
	enc := json.NewEncoder(w)
	if r.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(rep)
}
