package stats

import "github.com/rivo/uniseg"

// emojiRanges are static code-point ranges for emoji classification.
// No locale database; a grapheme cluster whose first rune falls in one
// of these ranges counts as a single emoji, so ZWJ sequences, skin-tone
// modifiers, and two-rune flags each count once.
var emojiRanges = [...][2]rune{
	{0x1F600, 0x1F64F}, // emoticons
	{0x1F300, 0x1F5FF}, // symbols & pictographs
	{0x1F680, 0x1F6FF}, // transport & map symbols
	{0x1F1E6, 0x1F1FF}, // regional indicators (flags)
	{0x2700, 0x27BF},   // dingbats
	{0x1F900, 0x1F9FF}, // supplemental symbols & pictographs
}

func isEmojiRune(r rune) bool {
	for _, rng := range emojiRanges {
		if r >= rng[0] && r <= rng[1] {
			return true
		}
	}
	return false
}

// scanEmojis returns every emoji grapheme cluster in s, in order.
func scanEmojis(s string) []string {
	var out []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		runes := g.Runes()
		if len(runes) > 0 && isEmojiRune(runes[0]) {
			out = append(out, g.Str())
		}
	}
	return out
}
