// Package reader defines the interface for parsing chat export files into
// the core transcript model.
package reader

import (
	"io"

	"github.com/sonnes/chatroast/core"
)

// Reader parses an exported chat transcript into a ParseResult.
//
// Implementations never fail on malformed individual lines; those are
// reported through ParseResult.Skipped. Only an unreadable source is an
// error.
type Reader interface {
	// ReadFile parses the export at the given path.
	ReadFile(path string) (*core.ParseResult, error)

	// Parse parses an export from a stream, one line at a time.
	Parse(src io.Reader) (*core.ParseResult, error)
}
