package stats

import "sort"

// Entry is one ranked row of a frequency table.
type Entry struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// TopN ranks a frequency table by descending count, ties broken by the
// lexicographically smaller key, and truncates to n entries. n <= 0
// returns the full ranking.
func TopN(freq map[string]int, n int) []Entry {
	entries := make([]Entry, 0, len(freq))
	for k, v := range freq {
		entries = append(entries, Entry{Key: k, Count: v})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Key < entries[j].Key
	})
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
