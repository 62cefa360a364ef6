// Package render defines the interface for rendering statistics reports
// into various output formats.
package render

import (
	"io"

	"github.com/sonnes/chatroast/core"
)

// Renderer writes a report to the given writer in a specific format.
type Renderer interface {
	Render(w io.Writer, rep *core.StatsReport) error
}
