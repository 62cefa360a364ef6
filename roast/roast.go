// Package roast turns a statistics report into scripted commentary. The
// jokes target observable chat behaviour, never message content; the
// package consumes only the StatsReport, it never re-reads raw text.
package roast

import (
	"fmt"
	"strings"

	"github.com/sonnes/chatroast/core"
	"github.com/sonnes/chatroast/stats"
)

// Level sets the commentary intensity.
type Level string

const (
	Mild   Level = "mild"
	Medium Level = "medium"
	Savage Level = "savage"
)

// ParseLevel normalizes a user-supplied level string. Unknown values fall
// back to Medium.
func ParseLevel(s string) Level {
	switch Level(strings.ToLower(s)) {
	case Mild:
		return Mild
	case Savage:
		return Savage
	default:
		return Medium
	}
}

// Generate produces the roast paragraph for a report. An empty report
// yields a fixed "no messages" line.
func Generate(rep *core.StatsReport, level Level) string {
	if rep.Summary.TotalMessages == 0 {
		return "No messages to roast."
	}

	var lines []string
	lines = append(lines, senderLines(rep, level)...)
	if line := peakLine(rep, level); line != "" {
		lines = append(lines, line)
	}
	if line := emojiLine(rep, level); line != "" {
		lines = append(lines, line)
	}
	if line := wordLine(rep, level); line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func senderLines(rep *core.StatsReport, level Level) []string {
	if len(rep.BySender) == 0 {
		return nil
	}

	total := rep.Summary.TotalMessages
	top := rep.Summary.MostActiveSender
	topPct := core.Percentage(rep.BySender[top], total)
	bottom, bottomCount := stats.LeastActive(rep.BySender)
	bottomPct := core.Percentage(bottomCount, total)

	var lines []string
	switch level {
	case Mild:
		lines = append(lines,
			fmt.Sprintf("%s sent the most messages at %d%% of the chat. Quite the social butterfly!", top, topPct))
	case Savage:
		lines = append(lines,
			fmt.Sprintf("%s hogged %d%% of the conversation. Ever heard of a hobby outside this chat?", top, topPct))
	default:
		lines = append(lines,
			fmt.Sprintf("%s dominated the chat with %d%% of the messages. Maybe let someone else get a word in?", top, topPct))
	}

	if bottom == top {
		return lines
	}

	switch level {
	case Mild:
		lines = append(lines,
			fmt.Sprintf("%s only contributed %d%% of messages. Lurking is an art form, after all.", bottom, bottomPct))
	case Savage:
		lines = append(lines,
			fmt.Sprintf("%s barely registered at %d%% of messages. Silent member or professional ghoster?", bottom, bottomPct))
	default:
		lines = append(lines,
			fmt.Sprintf("%s clocked in at just %d%% of messages. Do you even know this chat exists?", bottom, bottomPct))
	}
	return lines
}

func peakLine(rep *core.StatsReport, level Level) string {
	hour := rep.Summary.MostActiveHour
	weekday := rep.Summary.MostActiveWeekday
	if hour < 0 || weekday < 0 {
		return ""
	}

	when := core.FormatHour(hour)
	day := core.WeekdayNames[weekday]
	switch level {
	case Mild:
		return fmt.Sprintf("Most chatting happens around %s on %s. Night owls with a schedule, perhaps?", when, day)
	case Savage:
		return fmt.Sprintf("You lot blow up the chat at %s on %s. Congratulations on never respecting bed time.", when, day)
	default:
		return fmt.Sprintf("Peak chat time is %s on %s. Who needs sleep when you have memes?", when, day)
	}
}

func emojiLine(rep *core.StatsReport, level Level) string {
	top := stats.TopN(rep.Emojis, 1)
	if len(top) == 0 {
		return ""
	}

	emoji, count := top[0].Key, top[0].Count
	switch level {
	case Mild:
		return fmt.Sprintf("Your favourite emoji appears to be %s, used %d times. Expressive bunch!", emoji, count)
	case Savage:
		return fmt.Sprintf("%s shows up %d times. Ever considered using words like a normal human?", emoji, count)
	default:
		return fmt.Sprintf("Top emoji award goes to %s, dropped %d times. Maybe diversify your feelings?", emoji, count)
	}
}

func wordLine(rep *core.StatsReport, level Level) string {
	top := stats.TopN(rep.Words, 1)
	if len(top) == 0 {
		return ""
	}

	word, count := top[0].Key, top[0].Count
	switch level {
	case Mild:
		return fmt.Sprintf("The word %q comes up a lot (%d times). Looks like a favourite topic!", word, count)
	case Savage:
		return fmt.Sprintf("%q appears %d times. We get it, you have a limited vocabulary.", word, count)
	default:
		return fmt.Sprintf("You say %q %d times. Is that a cry for help or just laziness?", word, count)
	}
}
