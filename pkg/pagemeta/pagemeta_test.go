package pagemeta

import (
	"testing"
)

const samplePage = `<html><head><title>George Washington - Wikipedia</title>
<meta property="og:site_name" content="Wikipedia">
</head><body>
<article>
<h1>George Washington</h1>
<p>George Washington was an American military officer, statesman, and Founding Father
who served as the first president of the United States from 1789 to 1797. He led the
Continental Army to victory in the Revolutionary War and presided over the
Constitutional Convention of 1787.</p>
<p>Washington has thus become known as the Father of his Country. His devotion to
republicanism and civic virtue made him an exemplary figure among early American
politicians and statesmen.</p>
</article>
</body></html>`

func TestAnalyze(t *testing.T) {
	meta := Analyze("https://en.wikipedia.org/wiki/George_Washington", []byte(samplePage))
	if meta == nil {
		t.Fatal("Analyze() returned nil for a well-formed page")
	}
	if meta.Title == "" {
		t.Error("Analyze() returned empty title")
	}
}

func TestAnalyzeBadURL(t *testing.T) {
	if meta := Analyze("http://%zz-not-a-url", []byte(samplePage)); meta != nil {
		t.Errorf("Analyze() = %+v, want nil for unparseable URL", meta)
	}
}
