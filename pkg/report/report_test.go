package report

import (
	"path/filepath"
	"testing"
	"time"
)

func TestUpdateIndexNewestFirst(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.yaml")

	for _, id := range []int64{1, 3, 2} {
		err := UpdateIndex(path, Info{
			RunID:   id,
			Mode:    "concurrent",
			Created: time.Now(),
			Output:  "leaders_data.json",
		})
		if err != nil {
			t.Fatalf("UpdateIndex() error = %v", err)
		}
	}

	index, err := ReadIndex(path)
	if err != nil {
		t.Fatalf("ReadIndex() error = %v", err)
	}
	if len(index.Runs) != 3 {
		t.Fatalf("index has %d runs, want 3", len(index.Runs))
	}
	for i, want := range []int64{3, 2, 1} {
		if index.Runs[i].RunID != want {
			t.Errorf("index.Runs[%d].RunID = %d, want %d", i, index.Runs[i].RunID, want)
		}
	}
}

func TestUpdateIndexReplacesExistingEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.yaml")

	if err := UpdateIndex(path, Info{RunID: 7, Mode: "sequential"}); err != nil {
		t.Fatalf("UpdateIndex() error = %v", err)
	}
	if err := UpdateIndex(path, Info{RunID: 7, Mode: "concurrent", Enriched: 4}); err != nil {
		t.Fatalf("UpdateIndex() error = %v", err)
	}

	index, err := ReadIndex(path)
	if err != nil {
		t.Fatalf("ReadIndex() error = %v", err)
	}
	if len(index.Runs) != 1 {
		t.Fatalf("index has %d runs, want 1", len(index.Runs))
	}
	if index.Runs[0].Mode != "concurrent" || index.Runs[0].Enriched != 4 {
		t.Errorf("entry was not replaced: %+v", index.Runs[0])
	}
}

func TestReadIndexMissingFile(t *testing.T) {
	index, err := ReadIndex(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("ReadIndex() error = %v, want nil for missing file", err)
	}
	if len(index.Runs) != 0 {
		t.Errorf("missing file yielded %d runs", len(index.Runs))
	}
}
