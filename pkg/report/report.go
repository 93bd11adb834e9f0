// Package report maintains a YAML index of past pipeline runs next to the
// output file, so the most recent scrapes can be inspected without opening
// the SQLite history.
package report

import (
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

// Info summarizes one pipeline run.
type Info struct {
	RunID     int64     `yaml:"run_id"`
	Mode      string    `yaml:"mode"`
	Created   time.Time `yaml:"created"`
	Countries int       `yaml:"countries"`
	Leaders   int       `yaml:"leaders"`
	Enriched  int       `yaml:"enriched"`
	Duration  float64   `yaml:"duration_seconds"`
	Output    string    `yaml:"output"`
	Languages []string  `yaml:"languages,omitempty"`
}

// Index is the on-disk runs index file.
type Index struct {
	Runs []Info `yaml:"runs"`
}

// UpdateIndex adds or updates a run entry in the index file at indexPath,
// newest first.
func UpdateIndex(indexPath string, info Info) error {
	var index Index
	data, err := os.ReadFile(indexPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read run index: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &index); err != nil {
			return fmt.Errorf("failed to parse run index: %w", err)
		}
	}

	found := false
	for i, r := range index.Runs {
		if r.RunID == info.RunID {
			index.Runs[i] = info
			found = true
			break
		}
	}
	if !found {
		index.Runs = append(index.Runs, info)
	}

	sort.Slice(index.Runs, func(i, j int) bool {
		return index.Runs[i].RunID > index.Runs[j].RunID
	})

	output, err := yaml.Marshal(&index)
	if err != nil {
		return fmt.Errorf("failed to marshal run index: %w", err)
	}

	if err := os.WriteFile(indexPath, output, 0644); err != nil {
		return fmt.Errorf("failed to write run index: %w", err)
	}

	return nil
}

// ReadIndex loads the run index at indexPath. A missing file yields an
// empty index.
func ReadIndex(indexPath string) (Index, error) {
	var index Index
	data, err := os.ReadFile(indexPath)
	if os.IsNotExist(err) {
		return index, nil
	}
	if err != nil {
		return index, fmt.Errorf("failed to read run index: %w", err)
	}
	if err := yaml.Unmarshal(data, &index); err != nil {
		return index, fmt.Errorf("failed to parse run index: %w", err)
	}
	return index, nil
}
