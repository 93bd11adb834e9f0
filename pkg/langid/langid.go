// Package langid detects the language of leader summaries so the run
// report can show which languages a scrape touched.
package langid

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pemistahl/lingua-go"
)

// Detector wraps a lingua language detector. Building the underlying model
// is expensive, so create one Detector per run and reuse it.
type Detector struct {
	inner lingua.LanguageDetector
}

// NewDetector builds a detector over all spoken languages lingua supports.
func NewDetector() *Detector {
	return &Detector{
		inner: lingua.NewLanguageDetectorBuilder().
			FromAllSpokenLanguages().
			Build(),
	}
}

// Detect returns the ISO 639-1 code of the most likely language of text,
// or "" when detection is not confident enough to report anything.
func (d *Detector) Detect(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	language, ok := d.inner.DetectLanguageOf(text)
	if !ok {
		return ""
	}
	return strings.ToLower(language.IsoCode639_1().String())
}

// Distribution counts detected languages across a set of texts. Empty and
// undetectable texts are skipped.
func (d *Detector) Distribution(texts []string) map[string]int {
	dist := make(map[string]int)
	for _, text := range texts {
		if code := d.Detect(text); code != "" {
			dist[code]++
		}
	}
	return dist
}

// Format renders a distribution as "code:count" pairs, most frequent
// first, ties broken alphabetically.
func Format(dist map[string]int) []string {
	type kv struct {
		code  string
		count int
	}
	pairs := make([]kv, 0, len(dist))
	for code, count := range dist {
		pairs = append(pairs, kv{code, count})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].count != pairs[j].count {
			return pairs[i].count > pairs[j].count
		}
		return pairs[i].code < pairs[j].code
	})

	out := make([]string, len(pairs))
	for i, p := range pairs {
		out[i] = fmt.Sprintf("%s:%d", p.code, p.count)
	}
	return out
}
