// Package html renders reports as standalone HTML pages styled with
// Tailwind CSS v4 (CDN) and syntax highlighting via goldmark + chroma
// for the embedded raw report.
package html

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	highlighting "github.com/yuin/goldmark-highlighting/v2"

	"github.com/sonnes/chatroast/core"
	"github.com/sonnes/chatroast/stats"
)

//go:embed templates/*.html
var content embed.FS

// Renderer renders a report to a standalone HTML page.
type Renderer struct {
	md   goldmark.Markdown
	tmpl *template.Template

	// Title labels the page, typically the export file name.
	Title string
	// Commentary is optional roast text (markdown) to include on the page.
	Commentary string
	// TopN bounds the word and emoji tables. Zero means 10.
	TopN int
}

// New creates an HTML Renderer with goldmark configured for GFM and
// syntax highlighting.
func New() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("dracula"),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(false), // inline styles for standalone pages
				),
			),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithUnsafe(), // allow raw HTML in markdown
		),
	)

	tmpl := template.Must(
		template.New("page.html").
			Funcs(funcMap()).
			ParseFS(content, "templates/*.html"),
	)

	return &Renderer{md: md, tmpl: tmpl}
}

// pageData is the top-level template data passed to page.html.
type pageData struct {
	Title      string
	Summary    core.Summary
	DayCount   int
	Senders    []barRow
	Hours      []barRow
	Weekdays   []barRow
	Words      []stats.Entry
	Emojis     []stats.Entry
	Commentary template.HTML
	ReportJSON template.HTML
}

// barRow is one horizontal bar in a chart: label, count, and width as a
// percentage of the section maximum.
type barRow struct {
	Label   string
	Count   int
	Percent int // share of total, when meaningful
	Width   int // bar width, percent of the largest row
}

// indexData is the template data passed to index.html.
type indexData struct {
	Entries []core.ReportEntry
}

// RenderIndex writes an HTML index page listing the given report entries.
func (r *Renderer) RenderIndex(w io.Writer, entries []core.ReportEntry) error {
	return r.tmpl.ExecuteTemplate(w, "index.html", indexData{Entries: entries})
}

// Render writes the report as a complete HTML page to w.
func (r *Renderer) Render(w io.Writer, rep *core.StatsReport) error {
	topN := r.TopN
	if topN <= 0 {
		topN = 10
	}

	data := pageData{
		Title:    r.Title,
		Summary:  rep.Summary,
		DayCount: len(rep.ByDay),
		Senders:  senderRows(rep),
		Hours:    hourRows(rep.ByHour),
		Weekdays: weekdayRows(rep.ByWeekday),
		Words:    stats.TopN(rep.Words, topN),
		Emojis:   stats.TopN(rep.Emojis, topN),
	}
	if data.Title == "" {
		data.Title = "Chat report"
	}

	if r.Commentary != "" {
		h, err := r.convert(r.Commentary)
		if err != nil {
			return err
		}
		data.Commentary = h
	}

	raw, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	h, err := r.convert("```json\n" + string(raw) + "\n```")
	if err != nil {
		return err
	}
	data.ReportJSON = h

	return r.tmpl.ExecuteTemplate(w, "page.html", data)
}

func (r *Renderer) convert(markdown string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("goldmark convert: %w", err)
	}
	return template.HTML(buf.String()), nil
}

func senderRows(rep *core.StatsReport) []barRow {
	entries := stats.TopN(rep.BySender, 0)
	rows := make([]barRow, 0, len(entries))
	maxCount := 0
	for _, e := range entries {
		if e.Count > maxCount {
			maxCount = e.Count
		}
	}
	for _, e := range entries {
		rows = append(rows, barRow{
			Label:   e.Key,
			Count:   e.Count,
			Percent: core.Percentage(e.Count, rep.Summary.TotalMessages),
			Width:   core.Percentage(e.Count, maxCount),
		})
	}
	return rows
}

func hourRows(buckets [24]int) []barRow {
	maxCount := 0
	for _, v := range buckets {
		if v > maxCount {
			maxCount = v
		}
	}
	rows := make([]barRow, 0, len(buckets))
	for hour, count := range buckets {
		rows = append(rows, barRow{
			Label: core.FormatHour(hour),
			Count: count,
			Width: core.Percentage(count, maxCount),
		})
	}
	return rows
}

func weekdayRows(buckets [7]int) []barRow {
	maxCount := 0
	for _, v := range buckets {
		if v > maxCount {
			maxCount = v
		}
	}
	rows := make([]barRow, 0, len(buckets))
	for day, count := range buckets {
		rows = append(rows, barRow{
			Label: core.WeekdayNames[day],
			Count: count,
			Width: core.Percentage(count, maxCount),
		})
	}
	return rows
}
