// Package mapreduce aggregates per-summary word counts into run-level
// keyword statistics.
package mapreduce

import (
	"fmt"
	"sort"

	"github.com/dtnitsch/leaders-pipeline/pkg/analytics"
)

// Map generates a word frequency map for a single summary.
func Map(content string, a *analytics.Analytics) map[string]int {
	return a.WordFrequency(content)
}

// Reduce aggregates a slice of word frequency maps into a single map.
func Reduce(intermediate []map[string]int) map[string]int {
	finalResults := make(map[string]int)

	for _, counts := range intermediate {
		for word, count := range counts {
			finalResults[word] += count
		}
	}

	return finalResults
}

// TopKeywords returns the top N keywords as "word:count" strings, most
// frequent first.
func TopKeywords(wordCounts map[string]int, n int) []string {
	type kv struct {
		Key   string
		Value int
	}

	ss := make([]kv, 0, len(wordCounts))
	for k, v := range wordCounts {
		ss = append(ss, kv{k, v})
	}

	sort.Slice(ss, func(i, j int) bool {
		if ss[i].Value != ss[j].Value {
			return ss[i].Value > ss[j].Value
		}
		return ss[i].Key < ss[j].Key
	})

	limit := n
	if len(ss) < n {
		limit = len(ss)
	}

	keywords := make([]string, limit)
	for i := 0; i < limit; i++ {
		keywords[i] = fmt.Sprintf("%s:%d", ss[i].Key, ss[i].Value)
	}

	return keywords
}

// PrintTopKeywords prints the top N keywords as a numbered list.
func PrintTopKeywords(wordCounts map[string]int, n int) {
	for i, kw := range TopKeywords(wordCounts, n) {
		fmt.Printf("%d. %s\n", i+1, kw)
	}
}
