// Package terminal renders a statistics report as ANSI-colored bar
// charts and ranking tables.
package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	"github.com/sonnes/chatroast/core"
	"github.com/sonnes/chatroast/stats"
)

const (
	defaultWidth = 100
	defaultTopN  = 10
)

// Renderer pretty-prints a report to the terminal.
type Renderer struct {
	// Width overrides terminal width detection. Zero means auto-detect.
	Width int
	// TopN bounds the word and emoji tables. Zero means 10.
	TopN int
}

// New creates a terminal Renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render writes the report as ANSI-colored charts to w.
func (r *Renderer) Render(w io.Writer, rep *core.StatsReport) error {
	width := r.termWidth()
	topN := r.TopN
	if topN <= 0 {
		topN = defaultTopN
	}

	writeSummary(w, rep)

	if len(rep.BySender) > 0 {
		writeSection(w, "Message share")
		writeRanking(w, stats.TopN(rep.BySender, 0), rep.Summary.TotalMessages, width, styleBarSenders)
	}

	writeSection(w, "Messages by hour")
	writeHourChart(w, rep.ByHour, width)

	writeSection(w, "Messages by weekday")
	writeWeekdayChart(w, rep.ByWeekday, width)

	if len(rep.Words) > 0 {
		writeSection(w, "Top words")
		writeRanking(w, stats.TopN(rep.Words, topN), 0, width, styleBarWords)
	}

	if len(rep.Emojis) > 0 {
		writeSection(w, "Top emojis")
		writeRanking(w, stats.TopN(rep.Emojis, topN), 0, width, styleBarWords)
	}

	fmt.Fprintln(w)
	return nil
}

func (r *Renderer) termWidth() int {
	if r.Width > 0 {
		return r.Width
	}
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return defaultWidth
}

// writeSummary renders the headline metrics block.
func writeSummary(w io.Writer, rep *core.StatsReport) {
	s := rep.Summary
	fmt.Fprintln(w, styleTitle.Render(fmt.Sprintf("%d messages across %d days", s.TotalMessages, len(rep.ByDay))))

	var parts []string
	if s.MostActiveSender != "" {
		parts = append(parts, "loudest: "+s.MostActiveSender)
	}
	if s.MostActiveHour >= 0 {
		parts = append(parts, "peak hour: "+core.FormatHour(s.MostActiveHour))
	}
	if s.MostActiveDay != "" {
		parts = append(parts, "busiest day: "+s.MostActiveDay)
	}
	if s.LongestMessageChars > 0 {
		parts = append(parts, fmt.Sprintf("longest message: %d chars (%s)", s.LongestMessageChars, s.LongestMessageSender))
	}
	if len(parts) > 0 {
		fmt.Fprintln(w, styleMeta.Render(strings.Join(parts, "  ")))
	}
}

func writeSection(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, styleSection.Render(title))
}

// writeRanking renders labelled horizontal bars for ranked entries.
// When total > 0 a percentage column is added.
func writeRanking(w io.Writer, entries []stats.Entry, total, width int, barStyle lipgloss.Style) {
	if len(entries) == 0 {
		return
	}

	labelWidth := 0
	maxCount := 0
	for _, e := range entries {
		if lw := lipgloss.Width(e.Key); lw > labelWidth {
			labelWidth = lw
		}
		if e.Count > maxCount {
			maxCount = e.Count
		}
	}

	barWidth := width - labelWidth - 14
	if barWidth < 10 {
		barWidth = 10
	}

	for _, e := range entries {
		pad := strings.Repeat(" ", labelWidth-lipgloss.Width(e.Key))
		row := "  " + styleLabel.Render(e.Key) + pad + "  "
		row += barStyle.Render(bar(e.Count, maxCount, barWidth))
		row += " " + styleCount.Render(fmt.Sprintf("%d", e.Count))
		if total > 0 {
			row += styleMeta.Render(fmt.Sprintf(" (%d%%)", core.Percentage(e.Count, total)))
		}
		fmt.Fprintln(w, row)
	}
}

// writeHourChart renders all 24 hour buckets, including empty ones, so
// the shape of the day is visible.
func writeHourChart(w io.Writer, buckets [24]int, width int) {
	maxCount := 0
	for _, v := range buckets {
		if v > maxCount {
			maxCount = v
		}
	}
	barWidth := chartBarWidth(width, 4)

	for hour, count := range buckets {
		label := fmt.Sprintf("%4s", core.FormatHour(hour))
		fmt.Fprintf(w, "  %s %s %s\n",
			styleLabel.Render(label),
			styleBarActivity.Render(bar(count, maxCount, barWidth)),
			styleCount.Render(fmt.Sprintf("%d", count)))
	}
}

func writeWeekdayChart(w io.Writer, buckets [7]int, width int) {
	maxCount := 0
	for _, v := range buckets {
		if v > maxCount {
			maxCount = v
		}
	}
	barWidth := chartBarWidth(width, 9)

	for day, count := range buckets {
		label := fmt.Sprintf("%-9s", core.WeekdayNames[day])
		fmt.Fprintf(w, "  %s %s %s\n",
			styleLabel.Render(label),
			styleBarActivity.Render(bar(count, maxCount, barWidth)),
			styleCount.Render(fmt.Sprintf("%d", count)))
	}
}

func chartBarWidth(width, labelWidth int) int {
	bw := width - labelWidth - 10
	if bw < 10 {
		bw = 10
	}
	if bw > 60 {
		bw = 60
	}
	return bw
}

// bar scales count against maxCount into a block bar. Non-zero counts
// always get at least one block.
func bar(count, maxCount, width int) string {
	if count == 0 || maxCount == 0 {
		return ""
	}
	n := count * width / maxCount
	if n < 1 {
		n = 1
	}
	return strings.Repeat("█", n)
}
