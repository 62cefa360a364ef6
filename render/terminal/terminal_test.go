package terminal

import (
	"bytes"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sonnes/chatroast/core"
	"github.com/sonnes/chatroast/stats"
)

func sampleReport() *core.StatsReport {
	ts := time.Date(2023, 6, 5, 21, 0, 0, 0, time.UTC)
	res := &core.ParseResult{Messages: []core.Message{
		{Timestamp: ts, Sender: "Alice", Body: "pizza tonight? 😂", Seq: 0},
		{Timestamp: ts.Add(time.Minute), Sender: "Bob", Body: "pizza yes", Seq: 1},
		{Timestamp: ts.Add(2 * time.Minute), Sender: "Alice", Body: "great", Seq: 2},
	}}
	return stats.Analyze(res, stats.DefaultConfig())
}

func TestRenderReport(t *testing.T) {
	r := &Renderer{Width: 100}
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, sampleReport()))

	out := ansi.Strip(buf.String())

	assert.Contains(t, out, "3 messages across 1 days")
	assert.Contains(t, out, "loudest: Alice")
	assert.Contains(t, out, "peak hour: 9PM")
	assert.Contains(t, out, "Message share")
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "(67%)")
	assert.Contains(t, out, "Messages by hour")
	assert.Contains(t, out, "Messages by weekday")
	assert.Contains(t, out, "Monday")
	assert.Contains(t, out, "Top words")
	assert.Contains(t, out, "pizza")
	assert.Contains(t, out, "Top emojis")
	assert.Contains(t, out, "😂")
}

func TestRenderEmptyReport(t *testing.T) {
	rep := stats.Analyze(&core.ParseResult{}, stats.DefaultConfig())

	r := &Renderer{Width: 80}
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, rep))

	out := ansi.Strip(buf.String())
	assert.Contains(t, out, "0 messages across 0 days")
	assert.NotContains(t, out, "Message share", "empty sections are omitted")
	assert.NotContains(t, out, "Top words")
}

func TestBar(t *testing.T) {
	assert.Equal(t, "", bar(0, 10, 40))
	assert.Equal(t, "", bar(5, 0, 40))
	assert.Equal(t, "█", bar(1, 100, 40), "non-zero counts always visible")
	assert.Len(t, []rune(bar(100, 100, 40)), 40)
}
