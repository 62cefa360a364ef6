// Package core defines the parsed transcript model and the derived
// statistics report — the representation all readers produce and all
// renderers and collaborators consume.
package core

import "time"

// Message is one logical utterance in the transcript. Continuation lines
// are joined into Body with newlines by the parser.
type Message struct {
	// Timestamp is the date and time as recorded in the export. No
	// timezone normalization is applied.
	Timestamp time.Time `json:"timestamp"`
	// Sender is empty for system notifications (encryption notices,
	// membership changes).
	Sender string `json:"sender,omitempty"`
	Body   string `json:"body"`
	// Seq is the position in the transcript, assigned in parse order.
	// It is the canonical tie-break key; timestamps may repeat or appear
	// out of order across exports.
	Seq int `json:"seq"`
}

// System reports whether the message is a system notification.
func (m Message) System() bool { return m.Sender == "" }

// SkipReason classifies why a line was excluded from the message sequence.
type SkipReason string

const (
	// ReasonOrphanContinuation marks a continuation line that appeared
	// before any header line.
	ReasonOrphanContinuation SkipReason = "continuation with no preceding message"
	// ReasonBadTimestamp marks a header-shaped line whose date or time
	// failed to parse.
	ReasonBadTimestamp SkipReason = "unparseable timestamp"
)

// SkippedLine records one unparseable input line. Skipped lines are never
// fatal; they are surfaced so the caller can report parse-quality warnings.
type SkippedLine struct {
	Line   int        `json:"line"`
	Text   string     `json:"text"`
	Reason SkipReason `json:"reason"`
}

// ParseResult is the parser's full output. Messages preserve transcript
// order; the result is read-only after parsing.
type ParseResult struct {
	Messages []Message     `json:"messages"`
	Skipped  []SkippedLine `json:"skipped_lines,omitempty"`
}
