package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Leader represents one political figure as returned by the country-leaders
// API. All fields except Summary are passed through unmodified; Summary is
// derived from the leader's Wikipedia page and omitted when empty.
type Leader struct {
	ID           string `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	BirthDate    string `json:"birth_date"`
	DeathDate    string `json:"death_date"`
	PlaceOfBirth string `json:"place_of_birth"`
	WikipediaURL string `json:"wikipedia_url"`
	StartMandate string `json:"start_mandate"`
	EndMandate   string `json:"end_mandate"`
	Summary      string `json:"summary,omitempty"`
}

// LeadersByCountry maps a country code to its ordered leader list. Unlike a
// plain map, it remembers the order countries were added in, so the JSON
// output mirrors the order the upstream listing returned.
type LeadersByCountry struct {
	codes   []string
	leaders map[string][]Leader
}

// NewLeadersByCountry returns an empty mapping.
func NewLeadersByCountry() *LeadersByCountry {
	return &LeadersByCountry{
		leaders: make(map[string][]Leader),
	}
}

// Add stores the leader list for a country code. A code added twice keeps
// its original position and has its leaders replaced.
func (m *LeadersByCountry) Add(code string, leaders []Leader) {
	if _, ok := m.leaders[code]; !ok {
		m.codes = append(m.codes, code)
	}
	m.leaders[code] = leaders
}

// Get returns the leader list for a country code.
func (m *LeadersByCountry) Get(code string) ([]Leader, bool) {
	l, ok := m.leaders[code]
	return l, ok
}

// Codes returns the country codes in insertion order.
func (m *LeadersByCountry) Codes() []string {
	return m.codes
}

// Len returns the number of countries in the mapping.
func (m *LeadersByCountry) Len() int {
	return len(m.codes)
}

// TotalLeaders returns the number of leader records across all countries.
func (m *LeadersByCountry) TotalLeaders() int {
	n := 0
	for _, l := range m.leaders {
		n += len(l)
	}
	return n
}

// MarshalJSON emits the mapping as a JSON object with countries in
// insertion order. Values are encoded without HTML escaping so URLs and
// non-ASCII text stay literal.
func (m *LeadersByCountry) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, code := range m.codes {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := encodeNoEscape(code)
		if err != nil {
			return nil, fmt.Errorf("failed to encode country code %q: %w", code, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := encodeNoEscape(m.leaders[code])
		if err != nil {
			return nil, fmt.Errorf("failed to encode leaders for %q: %w", code, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into the mapping, preserving the key
// order found in the document.
func (m *LeadersByCountry) UnmarshalJSON(data []byte) error {
	m.codes = nil
	m.leaders = make(map[string][]Leader)

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to read object start: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("failed to read country key: %w", err)
		}
		code, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected string key, got %v", tok)
		}

		var leaders []Leader
		if err := dec.Decode(&leaders); err != nil {
			return fmt.Errorf("failed to decode leaders for %q: %w", code, err)
		}
		m.Add(code, leaders)
	}

	return nil
}

// encodeNoEscape marshals a value with HTML escaping disabled, trimming the
// trailing newline json.Encoder appends.
func encodeNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
