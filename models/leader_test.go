package models

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLeadersByCountryInsertionOrder(t *testing.T) {
	m := NewLeadersByCountry()
	m.Add("ru", []Leader{{FirstName: "Владимир"}})
	m.Add("be", []Leader{{FirstName: "Guy"}})
	m.Add("us", []Leader{{FirstName: "George"}})

	got := m.Codes()
	want := []string{"ru", "be", "us"}
	if len(got) != len(want) {
		t.Fatalf("Codes() length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Codes()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLeadersByCountryAddReplaces(t *testing.T) {
	m := NewLeadersByCountry()
	m.Add("be", []Leader{{FirstName: "old"}})
	m.Add("us", nil)
	m.Add("be", []Leader{{FirstName: "new"}})

	if m.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", m.Len())
	}
	if m.Codes()[0] != "be" {
		t.Errorf("re-adding a code moved it: Codes()[0] = %q", m.Codes()[0])
	}
	leaders, ok := m.Get("be")
	if !ok || len(leaders) != 1 || leaders[0].FirstName != "new" {
		t.Errorf("Get(be) = %v, want single replaced leader", leaders)
	}
}

func TestLeadersByCountryMarshalOrderAndLiterals(t *testing.T) {
	m := NewLeadersByCountry()
	m.Add("ru", []Leader{{
		FirstName:    "Жан",
		WikipediaURL: "https://ru.wikipedia.org/wiki/Пётр?x=1&y=2",
	}})
	m.Add("aa", []Leader{{FirstName: "First"}})

	// Encode the way the output writer does: HTML escaping off, so URLs
	// keep their ampersands.
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(m); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	out := buf.String()

	// "ru" was inserted first, so it must serialize first even though "aa"
	// sorts before it.
	if strings.Index(out, `"ru"`) > strings.Index(out, `"aa"`) {
		t.Errorf("country order not preserved in output: %s", out)
	}
	if !strings.Contains(out, "Жан") {
		t.Errorf("non-ASCII text was escaped: %s", out)
	}
	if !strings.Contains(out, "x=1&y=2") {
		t.Errorf("URL ampersand was HTML-escaped: %s", out)
	}
}

func TestLeadersByCountryRoundTrip(t *testing.T) {
	m := NewLeadersByCountry()
	m.Add("be", []Leader{
		{ID: "Q1", FirstName: "Guy", LastName: "Verhofstadt", Summary: "Premier ministre"},
		{ID: "Q2", FirstName: "Yves", LastName: "Leterme"},
	})
	m.Add("ru", []Leader{{ID: "Q3", FirstName: "Жан", Summary: "Жан был лидером"}})

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	parsed := NewLeadersByCountry()
	if err := json.Unmarshal(data, parsed); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if parsed.Len() != m.Len() {
		t.Fatalf("round trip changed country count: got %d, want %d", parsed.Len(), m.Len())
	}
	for i, code := range m.Codes() {
		if parsed.Codes()[i] != code {
			t.Errorf("round trip changed order at %d: got %q, want %q", i, parsed.Codes()[i], code)
		}
	}
	beLeaders, _ := parsed.Get("be")
	if len(beLeaders) != 2 || beLeaders[0].LastName != "Verhofstadt" {
		t.Errorf("round trip changed be leaders: %+v", beLeaders)
	}
	ruLeaders, _ := parsed.Get("ru")
	if len(ruLeaders) != 1 || ruLeaders[0].Summary != "Жан был лидером" {
		t.Errorf("round trip changed non-ASCII summary: %+v", ruLeaders)
	}
}

func TestLeaderSummaryOmittedWhenEmpty(t *testing.T) {
	data, err := json.Marshal(Leader{FirstName: "George", LastName: "Washington"})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if strings.Contains(string(data), "summary") {
		t.Errorf("empty summary must not appear in output: %s", data)
	}

	data, err = json.Marshal(Leader{FirstName: "Guy", Summary: "text"})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), `"summary":"text"`) {
		t.Errorf("non-empty summary missing from output: %s", data)
	}
}
