// Package stats computes aggregate statistics from a parsed transcript:
// participation counts, temporal histograms, and word/emoji frequency
// tables. Analysis is a pure function of its inputs; analyzing the same
// ParseResult twice yields identical reports, tie-breaks included.
package stats

import (
	"unicode/utf8"

	"github.com/sonnes/chatroast/core"
)

// Config controls tokenization and truncation.
type Config struct {
	// StopWords are excluded from the word frequency table.
	StopWords map[string]struct{}
	// MinTokenLength discards shorter tokens (in runes).
	MinTokenLength int
	// TopN is the truncation size callers pass to TopN. Analyze itself
	// never truncates the frequency maps.
	TopN int
}

// DefaultConfig returns the stock English configuration.
func DefaultConfig() Config {
	return Config{
		StopWords:      DefaultStopWords(),
		MinTokenLength: 2,
		TopN:           10,
	}
}

// Analyze derives a StatsReport from a ParseResult. An empty transcript
// yields zeroed aggregates and sentinel summary values, never an error.
func Analyze(res *core.ParseResult, cfg Config) *core.StatsReport {
	rep := core.NewStatsReport()

	var longest int
	longestSender := ""

	for _, msg := range res.Messages {
		// Temporal buckets include system messages; the notice still
		// marks chat activity at that moment.
		rep.ByHour[msg.Timestamp.Hour()]++
		rep.ByDay[msg.Timestamp.Format(core.DayLayout)]++
		rep.ByWeekday[core.WeekdayIndex(msg.Timestamp.Weekday())]++

		for _, e := range scanEmojis(msg.Body) {
			rep.Emojis[e]++
		}

		if msg.System() {
			continue
		}

		rep.BySender[msg.Sender]++
		for _, tok := range tokenize(msg.Body, cfg) {
			rep.Words[tok]++
		}

		// Strictly greater, so ties keep the earliest message.
		if n := utf8.RuneCountInString(msg.Body); n > longest {
			longest = n
			longestSender = msg.Sender
		}
	}

	rep.Summary = core.Summary{
		TotalMessages:        len(res.Messages),
		MostActiveHour:       maxBucket(rep.ByHour[:]),
		MostActiveWeekday:    maxBucket(rep.ByWeekday[:]),
		LongestMessageChars:  longest,
		LongestMessageSender: longestSender,
	}
	rep.Summary.MostActiveSender, _ = MostActive(rep.BySender)
	rep.Summary.MostActiveDay, _ = MostActive(rep.ByDay)

	return rep
}

// MostActive returns the key with the highest count. Ties go to the
// lexicographically smaller key; an empty map yields ("", 0).
func MostActive(m map[string]int) (string, int) {
	best, bestCount, found := "", 0, false
	for k, v := range m {
		if !found || v > bestCount || (v == bestCount && k < best) {
			best, bestCount, found = k, v, true
		}
	}
	return best, bestCount
}

// LeastActive returns the key with the lowest count, ties again going to
// the lexicographically smaller key.
func LeastActive(m map[string]int) (string, int) {
	best, bestCount, found := "", 0, false
	for k, v := range m {
		if !found || v < bestCount || (v == bestCount && k < best) {
			best, bestCount, found = k, v, true
		}
	}
	return best, bestCount
}

// maxBucket returns the index of the highest bucket, lowest index on
// ties. All-zero buckets yield the -1 sentinel.
func maxBucket(buckets []int) int {
	best := -1
	bestCount := 0
	for i, v := range buckets {
		if v > bestCount {
			best, bestCount = i, v
		}
	}
	return best
}
