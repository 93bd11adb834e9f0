// Package extract pulls the lead paragraph out of encyclopedia-style HTML
// pages.
package extract

import (
	"bufio"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// minParagraphLength is the rune count a paragraph must exceed to qualify
// as the lead paragraph. Wikipedia pages open with short disambiguation and
// coordinate lines; 80 characters skips those reliably.
const minParagraphLength = 80

// citationPattern matches bracketed numeric citation markers like [1].
var citationPattern = regexp.MustCompile(`\[[0-9]+\]`)

// FirstParagraph returns the first <p> element in document order whose
// normalized text exceeds 80 characters, with citation markers stripped.
// It returns an empty string when no paragraph qualifies.
func FirstParagraph(doc *goquery.Document) string {
	var result string

	doc.Find("p").EachWithBreak(func(i int, s *goquery.Selection) bool {
		text := normalizeText(s.Text())
		if utf8.RuneCountInString(text) > minParagraphLength {
			result = StripCitations(text)
			return false
		}
		return true
	})

	return result
}

// StripCitations removes all [digits] citation markers from text.
func StripCitations(text string) string {
	return citationPattern.ReplaceAllString(text, "")
}

// normalizeText cleans up a string by trimming space and collapsing
// newlines into single spaces.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}
