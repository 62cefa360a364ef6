package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sonnes/chatroast/core"
)

func msg(seq int, ts time.Time, sender, body string) core.Message {
	return core.Message{Timestamp: ts, Sender: sender, Body: body, Seq: seq}
}

func at(day, hour int) time.Time {
	return time.Date(2023, 1, day, hour, 0, 0, 0, time.UTC)
}

func TestAnalyzeScenario(t *testing.T) {
	res := &core.ParseResult{Messages: []core.Message{
		msg(0, at(1, 9), "Alice", "hi"),
		msg(1, at(1, 9), "Bob", "hey!!\ntotally unstructured line"),
		msg(2, at(1, 9), "Alice", "😂 lol"),
	}}

	rep := Analyze(res, DefaultConfig())

	assert.Equal(t, map[string]int{"Alice": 2, "Bob": 1}, rep.BySender)
	assert.Equal(t, 3, rep.ByHour[9])
	assert.Equal(t, map[string]int{"2023-01-01": 3}, rep.ByDay)
	assert.Equal(t, map[string]int{"😂": 1}, rep.Emojis)

	// "lol" is a stop word; the continuation line is tokenized with the
	// rest of Bob's body.
	assert.Equal(t, 1, rep.Words["hey"])
	assert.Equal(t, 1, rep.Words["totally"])
	assert.Equal(t, 1, rep.Words["unstructured"])
	assert.NotContains(t, rep.Words, "lol")

	assert.Equal(t, 3, rep.Summary.TotalMessages)
	assert.Equal(t, "Alice", rep.Summary.MostActiveSender)
	assert.Equal(t, 9, rep.Summary.MostActiveHour)
	assert.Equal(t, "2023-01-01", rep.Summary.MostActiveDay)
}

func TestSystemMessagesExcluded(t *testing.T) {
	res := &core.ParseResult{Messages: []core.Message{
		msg(0, at(1, 8), "", "Messages are end-to-end encrypted"),
		msg(1, at(1, 9), "Alice", "morning"),
	}}

	rep := Analyze(res, DefaultConfig())

	assert.Equal(t, map[string]int{"Alice": 1}, rep.BySender)
	assert.Equal(t, 1, rep.ByHour[8], "system messages count toward activity")
	assert.Equal(t, 2, rep.ByDay["2023-01-01"])
	assert.NotContains(t, rep.Words, "encrypted")
	assert.Equal(t, 2, rep.Summary.TotalMessages)
}

func TestAnalyzeEmpty(t *testing.T) {
	rep := Analyze(&core.ParseResult{}, DefaultConfig())

	assert.Empty(t, rep.BySender)
	assert.Empty(t, rep.ByDay)
	assert.Empty(t, rep.Words)
	assert.Empty(t, rep.Emojis)
	assert.Equal(t, 0, rep.Summary.TotalMessages)
	assert.Equal(t, "", rep.Summary.MostActiveSender)
	assert.Equal(t, -1, rep.Summary.MostActiveHour)
	assert.Equal(t, "", rep.Summary.MostActiveDay)
	assert.Equal(t, -1, rep.Summary.MostActiveWeekday)
	assert.Equal(t, 0, rep.Summary.LongestMessageChars)
}

func TestAnalyzeIdempotent(t *testing.T) {
	res := &core.ParseResult{Messages: []core.Message{
		msg(0, at(1, 9), "Alice", "hi there 😂"),
		msg(1, at(2, 22), "Bob", "good night"),
	}}

	first := Analyze(res, DefaultConfig())
	second := Analyze(res, DefaultConfig())
	assert.Equal(t, first, second)
}

func TestTieBreaks(t *testing.T) {
	t.Run("sender ties go to smaller name", func(t *testing.T) {
		res := &core.ParseResult{Messages: []core.Message{
			msg(0, at(1, 9), "Zoe", "one"),
			msg(1, at(1, 9), "Ann", "one"),
		}}
		rep := Analyze(res, DefaultConfig())
		assert.Equal(t, "Ann", rep.Summary.MostActiveSender)
	})

	t.Run("hour ties go to earlier hour", func(t *testing.T) {
		res := &core.ParseResult{Messages: []core.Message{
			msg(0, at(1, 14), "Alice", "afternoon"),
			msg(1, at(1, 9), "Alice", "morning"),
		}}
		rep := Analyze(res, DefaultConfig())
		assert.Equal(t, 9, rep.Summary.MostActiveHour)
	})

	t.Run("day ties go to earlier day", func(t *testing.T) {
		res := &core.ParseResult{Messages: []core.Message{
			msg(0, at(5, 9), "Alice", "later"),
			msg(1, at(2, 9), "Alice", "earlier"),
		}}
		rep := Analyze(res, DefaultConfig())
		assert.Equal(t, "2023-01-02", rep.Summary.MostActiveDay)
	})
}

func TestLongestMessage(t *testing.T) {
	res := &core.ParseResult{Messages: []core.Message{
		msg(0, at(1, 9), "Alice", "short"),
		msg(1, at(1, 9), "Bob", "a much longer message body"),
		msg(2, at(1, 9), "", "system notice that is even longer than all of them"),
	}}

	rep := Analyze(res, DefaultConfig())
	assert.Equal(t, len("a much longer message body"), rep.Summary.LongestMessageChars)
	assert.Equal(t, "Bob", rep.Summary.LongestMessageSender, "system messages are not candidates")
}

func TestMostActiveLeastActive(t *testing.T) {
	m := map[string]int{"b": 2, "a": 2, "c": 1}

	k, v := MostActive(m)
	assert.Equal(t, "a", k)
	assert.Equal(t, 2, v)

	k, v = LeastActive(m)
	assert.Equal(t, "c", k)
	assert.Equal(t, 1, v)

	k, v = MostActive(nil)
	assert.Equal(t, "", k)
	assert.Equal(t, 0, v)
}

func TestTokenize(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name string
		body string
		want []string
	}{
		{"punctuation stripped", "Hey!! You there?", []string{"hey", "there"}},
		{"stop words removed", "the cat and the hat", []string{"cat", "hat"}},
		{"short tokens removed", "I a go going", []string{"go", "going"}},
		{"contractions survive", "don't won't", []string{"won't"}},
		{"emoji ignored", "😂 funny", []string{"funny"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tokenize(tt.body, cfg))
		})
	}
}

func TestScanEmojis(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{"single", "so funny 😂", []string{"😂"}},
		{"repeated", "😂😂", []string{"😂", "😂"}},
		{"skin tone is one cluster", "nice 👍🏽", []string{"👍🏽"}},
		{"flag is one cluster", "off to 🇩🇪", []string{"🇩🇪"}},
		{"plain text", "no emoji here", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scanEmojis(tt.body))
		})
	}
}

func TestTopN(t *testing.T) {
	freq := map[string]int{"pizza": 3, "beer": 3, "zzz": 5, "nap": 1}

	top := TopN(freq, 3)
	require.Len(t, top, 3)
	assert.Equal(t, Entry{Key: "zzz", Count: 5}, top[0])
	assert.Equal(t, Entry{Key: "beer", Count: 3}, top[1], "ties ordered lexicographically")
	assert.Equal(t, Entry{Key: "pizza", Count: 3}, top[2])

	assert.Len(t, TopN(freq, 0), 4, "non-positive n returns everything")
	assert.Empty(t, TopN(nil, 5))
}
