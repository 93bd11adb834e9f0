// Package pagemeta recovers lightweight metadata about a fetched reference
// page. The metadata feeds progress logs and the run report; it never
// touches the summary text itself.
package pagemeta

import (
	"bytes"
	"net/url"

	"github.com/go-shiori/go-readability"
)

// Meta holds readability-derived metadata for a reference page.
type Meta struct {
	Title    string
	SiteName string
	Excerpt  string
	Byline   string
}

// Analyze runs readability over raw HTML and extracts page metadata.
// It returns nil when the URL or document cannot be processed; callers
// treat that as "no metadata", not as a failure.
func Analyze(rawURL string, html []byte) *Meta {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return nil
	}

	parser := readability.NewParser()
	article, err := parser.Parse(bytes.NewReader(html), parsedURL)
	if err != nil {
		return nil
	}

	return &Meta{
		Title:    article.Title,
		SiteName: article.SiteName,
		Excerpt:  article.Excerpt,
		Byline:   article.Byline,
	}
}
