// Package output serializes the aggregated leader mapping to disk.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/dtnitsch/leaders-pipeline/models"
	"github.com/dtnitsch/leaders-pipeline/pkg/storage"
)

// Writer persists LeadersByCountry as human-readable JSON.
type Writer struct {
	store *storage.Storage
}

// NewWriter creates a Writer.
func NewWriter() *Writer {
	return &Writer{store: &storage.Storage{}}
}

// Write serializes the mapping to path with two-space indentation.
// Non-ASCII characters are emitted literally and an existing file is
// overwritten unconditionally.
func (w *Writer) Write(leadersByCountry *models.LeadersByCountry, path string) error {
	data, err := Marshal(leadersByCountry)
	if err != nil {
		return err
	}
	if err := w.store.SaveFile(path, data); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}

// Read parses a previously written output file back into an ordered
// mapping.
func (w *Writer) Read(path string) (*models.LeadersByCountry, error) {
	data, err := w.store.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read output file %s: %w", path, err)
	}

	leadersByCountry := models.NewLeadersByCountry()
	if err := json.Unmarshal(data, leadersByCountry); err != nil {
		return nil, fmt.Errorf("failed to parse output file %s: %w", path, err)
	}
	return leadersByCountry, nil
}

// Marshal renders the mapping as indented JSON with HTML escaping
// disabled, so URLs and non-Latin names survive verbatim.
func Marshal(leadersByCountry *models.LeadersByCountry) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(leadersByCountry); err != nil {
		return nil, fmt.Errorf("failed to marshal leaders mapping: %w", err)
	}
	return buf.Bytes(), nil
}
