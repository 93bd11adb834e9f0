// Package analytics computes word frequencies over leader summaries.
package analytics

import (
	"sort"
	"strings"
)

type Analytics struct{}

// commonWords are function words and biography boilerplate excluded from
// frequency analysis. Extend as needed.
var commonWords = map[string]struct{}{
	"a": {}, "about": {}, "after": {}, "against": {}, "all": {}, "also": {},
	"an": {}, "and": {}, "any": {}, "are": {}, "as": {}, "at": {},

	"be": {}, "became": {}, "because": {}, "been": {}, "before": {},
	"being": {}, "between": {}, "both": {}, "but": {}, "by": {},

	"can": {}, "could": {},

	"did": {}, "do": {}, "does": {}, "during": {},

	"each": {}, "early": {}, "end": {},

	"first": {}, "for": {}, "from": {},

	"had": {}, "has": {}, "have": {}, "he": {}, "her": {}, "him": {},
	"his": {}, "how": {},

	"i": {}, "if": {}, "in": {}, "into": {}, "is": {}, "it": {}, "its": {},

	"known": {},

	"later": {}, "led": {},

	"made": {}, "many": {}, "may": {}, "more": {}, "most": {},

	"no": {}, "not": {}, "now": {},

	"of": {}, "off": {}, "on": {}, "one": {}, "only": {}, "or": {},
	"other": {}, "out": {}, "over": {},

	"second": {}, "served": {}, "she": {}, "since": {}, "so": {},
	"some": {}, "such": {},

	"than": {}, "that": {}, "the": {}, "their": {}, "then": {},
	"there": {}, "these": {}, "they": {}, "this": {}, "those": {},
	"through": {}, "to": {}, "two": {},

	"under": {}, "until": {}, "up": {}, "upon": {},

	"was": {}, "were": {}, "when": {}, "where": {}, "which": {},
	"while": {}, "who": {}, "whom": {}, "whose": {}, "with": {},
	"would": {},

	"year": {}, "years": {},
}

// IsStopword checks if a word is excluded from frequency analysis.
func IsStopword(word string) bool {
	_, exists := commonWords[strings.ToLower(word)]
	return exists
}

// WordFrequency counts word occurrences in text, lowercased, with
// punctuation trimmed and stopwords skipped.
func (a *Analytics) WordFrequency(text string) map[string]int {
	words := strings.Fields(strings.ToLower(text))
	frequencies := make(map[string]int)

	for _, word := range words {
		word = strings.TrimFunc(word, func(r rune) bool {
			// Keep letters (any script) and digits; trim punctuation.
			return !isLetterOrDigit(r)
		})

		if _, exists := commonWords[word]; exists || word == "" {
			continue
		}

		frequencies[word]++
	}

	return frequencies
}

func isLetterOrDigit(r rune) bool {
	if 'a' <= r && r <= 'z' || '0' <= r && r <= '9' {
		return true
	}
	// Summaries are frequently non-English; keep non-ASCII letters intact.
	return r > 127
}

type wordCount struct {
	Word  string
	Count int
}

// TopNWords returns the n most frequent non-stopword words in text.
func (a *Analytics) TopNWords(text string, n int) []string {
	frequencies := a.WordFrequency(text)

	counts := make([]wordCount, 0, len(frequencies))
	for k, v := range frequencies {
		counts = append(counts, wordCount{k, v})
	}

	sort.Slice(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	limit := n
	if len(counts) < n {
		limit = len(counts)
	}

	topN := make([]string, limit)
	for i := 0; i < limit; i++ {
		topN[i] = counts[i].Word
	}

	return topN
}
