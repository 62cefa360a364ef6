// Package whatsapp reads WhatsApp text exports: one timestamped header
// line per message, with continuation lines for multi-line bodies.
package whatsapp

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/sonnes/chatroast/core"
)

// maxLineSize is the maximum physical line size (1 MB). Pasted content in
// chat exports can exceed the default 64 KB bufio.Scanner buffer.
const maxLineSize = 1 << 20

// DateOrder enumerates the component order of the export's dates.
type DateOrder string

const (
	MonthFirst DateOrder = "mdy"
	DayFirst   DateOrder = "dmy"
	YearFirst  DateOrder = "ymd"
)

// Format describes the header line shape of an export. Exports carry no
// format metadata, so the caller supplies it explicitly; nothing is
// auto-detected.
//
// The zero value is usable and equals DefaultFormat: month-first dates,
// "/" between date components, a 12-hour clock with an optional AM/PM
// marker, and " - " between timestamp and sender. That matches the
// standard English export:
//
//	12/30/24, 9:15 PM - Alice: Hey!
type Format struct {
	Order   DateOrder // date component order; default MonthFirst
	DateSep string    // separator between date components; default "/"
	Sep     string    // separator between timestamp and sender; default "-"
	// Clock24 disables the AM/PM marker entirely. When false, a missing
	// marker on a given line falls back to 24-hour parsing, matching
	// exports that mix conventions.
	Clock24 bool
}

// DefaultFormat returns the standard English export format.
func DefaultFormat() Format {
	return Format{Order: MonthFirst, DateSep: "/", Sep: "-"}
}

func (f Format) normalized() Format {
	if f.Order == "" {
		f.Order = MonthFirst
	}
	if f.DateSep == "" {
		f.DateSep = "/"
	}
	if f.Sep == "" {
		f.Sep = "-"
	}
	return f
}

// headerPattern compiles the anchored header regexp for this format.
// Everything after the timestamp separator is captured as rest; the
// sender/body split happens afterwards on the first colon, so colons in
// continuation lines or message bodies are never re-interpreted.
func (f Format) headerPattern() (*regexp.Regexp, error) {
	d := regexp.QuoteMeta(f.DateSep)
	date := `\d{1,4}` + d + `\d{1,2}` + d + `\d{1,4}`

	pat := `^(?P<date>` + date + `),\s*(?P<clock>\d{1,2}:\d{2})`
	if !f.Clock24 {
		pat += `(?:\s*(?P<ampm>[AaPp][Mm]))?`
	}
	pat += `\s*` + regexp.QuoteMeta(f.Sep) + `\s*(?P<rest>.*)$`

	return regexp.Compile(pat)
}

// Reader parses WhatsApp text exports into the core transcript model.
type Reader struct {
	format Format
	re     *regexp.Regexp
}

// New creates a Reader for the given format.
func New(f Format) (*Reader, error) {
	f = f.normalized()
	re, err := f.headerPattern()
	if err != nil {
		return nil, fmt.Errorf("compile header pattern: %w", err)
	}
	return &Reader{format: f, re: re}, nil
}

// ReadFile parses the export at the given path.
func (r *Reader) ReadFile(path string) (*core.ParseResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open export: %w", err)
	}
	defer f.Close()

	res, err := r.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return res, nil
}

// header is a classified header line, before timestamp validation.
type header struct {
	date  string
	clock string
	ampm  string
	rest  string
}

// classify tests one physical line against the header pattern. Lines that
// fail are continuations by definition.
func (r *Reader) classify(line string) (header, bool) {
	m := r.re.FindStringSubmatch(line)
	if m == nil {
		return header{}, false
	}
	h := header{
		date:  m[r.re.SubexpIndex("date")],
		clock: m[r.re.SubexpIndex("clock")],
		rest:  m[r.re.SubexpIndex("rest")],
	}
	if i := r.re.SubexpIndex("ampm"); i >= 0 {
		h.ampm = m[i]
	}
	return h, true
}

// Parse reads the export one line at a time in a single pass. Malformed
// individual lines never fail the parse; they are recorded in
// ParseResult.Skipped. Only a broken source stream returns an error.
func (r *Reader) Parse(src io.Reader) (*core.ParseResult, error) {
	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, maxLineSize), maxLineSize)

	res := &core.ParseResult{}
	var open *core.Message
	seq := 0
	lineNo := 0

	flush := func() {
		if open != nil {
			res.Messages = append(res.Messages, *open)
			open = nil
		}
	}

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		h, ok := r.classify(line)
		if !ok {
			// Continuation line: appended verbatim, blank lines
			// included, so blank lines inside multi-line messages
			// survive.
			if open == nil {
				res.Skipped = append(res.Skipped, core.SkippedLine{
					Line:   lineNo,
					Text:   line,
					Reason: core.ReasonOrphanContinuation,
				})
				continue
			}
			open.Body += "\n" + line
			continue
		}

		ts, err := r.format.parseTimestamp(h.date, h.clock, h.ampm)
		if err != nil {
			// Header-shaped but not a valid moment in time. The line
			// is distinct input, not continuation text: drop it whole
			// and leave the open message as it was.
			res.Skipped = append(res.Skipped, core.SkippedLine{
				Line:   lineNo,
				Text:   line,
				Reason: core.ReasonBadTimestamp,
			})
			continue
		}

		flush()
		sender, body := splitSender(h.rest)
		open = &core.Message{
			Timestamp: ts,
			Sender:    sender,
			Body:      body,
			Seq:       seq,
		}
		seq++
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan transcript: %w", err)
	}
	return res, nil
}

// splitSender splits the post-timestamp remainder on the first colon.
// Lines without one are system notices ("Messages are end-to-end
// encrypted") and yield an empty sender.
func splitSender(rest string) (sender, body string) {
	idx := strings.IndexByte(rest, ':')
	if idx < 0 {
		return "", rest
	}
	return strings.TrimSpace(rest[:idx]), strings.TrimLeft(rest[idx+1:], " \t")
}

// parseTimestamp validates and parses the date and clock captures.
// Two-digit years are interpreted as 2000+yy.
func (f Format) parseTimestamp(date, clock, ampm string) (time.Time, error) {
	parts := strings.Split(date, f.DateSep)
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("malformed date %q", date)
	}

	yearIdx := 2
	if f.Order == YearFirst {
		yearIdx = 0
	}
	if len(parts[yearIdx]) == 2 {
		parts[yearIdx] = "20" + parts[yearIdx]
	}

	var month, day, year string
	switch f.Order {
	case DayFirst:
		day, month, year = parts[0], parts[1], parts[2]
	case YearFirst:
		year, month, day = parts[0], parts[1], parts[2]
	default:
		month, day, year = parts[0], parts[1], parts[2]
	}

	value := month + "/" + day + "/" + year + " " + clock
	layout := "1/2/2006 15:04"
	if ampm != "" {
		value += " " + strings.ToUpper(ampm)
		layout = "1/2/2006 3:04 PM"
	}

	ts, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", date+", "+clock, err)
	}
	return ts, nil
}
