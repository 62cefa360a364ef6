package stats

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// defaultStopWords is a small set of common English stop words. Exports
// in other languages can extend or replace it via Config.
var defaultStopWords = []string{
	"the", "and", "is", "in", "to", "a", "of", "for", "on", "with",
	"you", "i", "it", "that", "at", "this", "my", "your", "me", "we",
	"our", "us", "be", "as", "are", "was", "were", "so", "but", "if",
	"too", "not", "or", "just", "it's", "its", "do", "did", "didn't",
	"don't", "dont", "can't", "u", "im", "lol", "haha", "hahaha",
}

// DefaultStopWords returns a fresh copy of the built-in stop word set.
func DefaultStopWords() map[string]struct{} {
	set := make(map[string]struct{}, len(defaultStopWords))
	for _, w := range defaultStopWords {
		set[w] = struct{}{}
	}
	return set
}

// tokenize normalizes a message body into counted tokens: lowercase,
// punctuation stripped, split on whitespace. Apostrophes survive so
// contractions match the stop word list. Tokens shorter than
// MinTokenLength or present in StopWords are discarded.
func tokenize(body string, cfg Config) []string {
	var b strings.Builder
	b.Grow(len(body))
	for _, r := range strings.ToLower(body) {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r) || r == '\'':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	var out []string
	for _, tok := range strings.Fields(b.String()) {
		if utf8.RuneCountInString(tok) < cfg.MinTokenLength {
			continue
		}
		if _, stop := cfg.StopWords[tok]; stop {
			continue
		}
		out = append(out, tok)
	}
	return out
}
