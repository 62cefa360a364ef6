package roast

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sonnes/chatroast/core"
	"github.com/sonnes/chatroast/stats"
)

func report(t *testing.T) *core.StatsReport {
	t.Helper()
	ts := time.Date(2023, 6, 5, 21, 0, 0, 0, time.UTC) // a Monday
	res := &core.ParseResult{Messages: []core.Message{
		{Timestamp: ts, Sender: "Alice", Body: "pizza pizza 😂", Seq: 0},
		{Timestamp: ts, Sender: "Alice", Body: "pizza night", Seq: 1},
		{Timestamp: ts, Sender: "Bob", Body: "ok", Seq: 2},
	}}
	return stats.Analyze(res, stats.DefaultConfig())
}

func TestGenerateLevels(t *testing.T) {
	rep := report(t)

	tests := []struct {
		level Level
		want  string
	}{
		{Mild, "social butterfly"},
		{Medium, "dominated the chat"},
		{Savage, "hogged"},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			out := Generate(rep, tt.level)
			assert.Contains(t, out, "Alice")
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestGenerateContent(t *testing.T) {
	out := Generate(report(t), Medium)

	assert.Contains(t, out, "Alice", "top sender named")
	assert.Contains(t, out, "Bob", "bottom sender named")
	assert.Contains(t, out, "67%", "top sender share")
	assert.Contains(t, out, "9PM", "peak hour in 12-hour form")
	assert.Contains(t, out, "Monday", "peak weekday named")
	assert.Contains(t, out, "😂", "top emoji quoted")
	assert.Contains(t, out, `"pizza"`, "top word quoted")
}

func TestGenerateSingleSender(t *testing.T) {
	ts := time.Date(2023, 6, 5, 21, 0, 0, 0, time.UTC)
	res := &core.ParseResult{Messages: []core.Message{
		{Timestamp: ts, Sender: "Alice", Body: "talking to myself", Seq: 0},
	}}
	rep := stats.Analyze(res, stats.DefaultConfig())

	out := Generate(rep, Medium)
	assert.Contains(t, out, "Alice")
	assert.NotContains(t, out, "clocked in", "no lurker line when there is only one sender")
}

func TestGenerateEmpty(t *testing.T) {
	rep := stats.Analyze(&core.ParseResult{}, stats.DefaultConfig())
	assert.Equal(t, "No messages to roast.", Generate(rep, Savage))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, Mild, ParseLevel("mild"))
	assert.Equal(t, Savage, ParseLevel("SAVAGE"))
	assert.Equal(t, Medium, ParseLevel("medium"))
	assert.Equal(t, Medium, ParseLevel("nuclear"), "unknown levels fall back to medium")
	assert.Equal(t, Medium, ParseLevel(""))
}

func TestDeterministicOutput(t *testing.T) {
	rep := report(t)
	first := Generate(rep, Medium)
	second := Generate(rep, Medium)
	assert.Equal(t, first, second)
	assert.Greater(t, len(strings.Split(first, "\n")), 3)
}
