package core

import "time"

// ReportEntry holds lightweight metadata for one analyzed export, used by
// the manifest file and the index template. It carries the headline
// numbers the index page needs without the full report.
type ReportEntry struct {
	Name         string    `json:"name"` // base name of the analyzed export
	Source       string    `json:"source"`
	Href         string    `json:"href"` // generated report file
	MessageCount int       `json:"message_count"`
	SkippedLines int       `json:"skipped_lines,omitempty"`
	Senders      []string  `json:"senders,omitempty"`
	AnalyzedAt   time.Time `json:"analyzed_at"`
}
