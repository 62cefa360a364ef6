package core

// DayLayout is the calendar-date key format used by ByDay. Lexicographic
// order of keys equals chronological order, so one tie-break rule covers
// both.
const DayLayout = "2006-01-02"

// StatsReport is the statistics engine's full output. It is recomputed
// fresh on every run and never mutated afterwards; analyzing the same
// ParseResult twice yields identical reports.
type StatsReport struct {
	// BySender counts messages per sender. System messages are excluded.
	BySender map[string]int `json:"message_count_by_sender"`
	// ByHour buckets every message (system included) by hour of day.
	ByHour [24]int `json:"activity_by_hour"`
	// ByDay buckets every message by calendar date (DayLayout keys).
	ByDay map[string]int `json:"activity_by_day"`
	// ByWeekday buckets every message by weekday, Monday = 0.
	ByWeekday [7]int `json:"activity_by_weekday"`
	// Words maps normalized token → count across non-system messages.
	// Top-N truncation is applied by the caller, not here.
	Words map[string]int `json:"word_frequency"`
	// Emojis maps emoji grapheme cluster → count.
	Emojis map[string]int `json:"emoji_frequency"`

	Summary Summary `json:"summary_metrics"`
}

// Summary holds the derived scalars consumed by downstream commentary.
// Sentinels for an empty transcript: empty strings and -1 for the hour
// and weekday.
type Summary struct {
	TotalMessages        int    `json:"total_messages"`
	MostActiveSender     string `json:"most_active_sender,omitempty"`
	MostActiveHour       int    `json:"most_active_hour"`
	MostActiveDay        string `json:"most_active_day,omitempty"`
	MostActiveWeekday    int    `json:"most_active_weekday"`
	LongestMessageChars  int    `json:"longest_message_chars"`
	LongestMessageSender string `json:"longest_message_sender,omitempty"`
}

// NewStatsReport returns a zeroed report with all maps initialized and
// summary sentinels set.
func NewStatsReport() *StatsReport {
	return &StatsReport{
		BySender: make(map[string]int),
		ByDay:    make(map[string]int),
		Words:    make(map[string]int),
		Emojis:   make(map[string]int),
		Summary: Summary{
			MostActiveHour:    -1,
			MostActiveWeekday: -1,
		},
	}
}
