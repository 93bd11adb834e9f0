package mapreduce

import (
	"reflect"
	"testing"

	"github.com/dtnitsch/leaders-pipeline/pkg/analytics"
)

func TestMapReduceRoundTrip(t *testing.T) {
	a := &analytics.Analytics{}

	intermediate := []map[string]int{
		Map("president of Belgium", a),
		Map("president of France", a),
	}

	got := Reduce(intermediate)
	want := map[string]int{"president": 2, "belgium": 1, "france": 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Reduce() = %v, want %v", got, want)
	}
}

func TestTopKeywords(t *testing.T) {
	counts := map[string]int{"minister": 5, "war": 2, "president": 5, "reform": 1}

	got := TopKeywords(counts, 3)
	// Equal counts tie-break alphabetically.
	want := []string{"minister:5", "president:5", "war:2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopKeywords() = %v, want %v", got, want)
	}
}

func TestTopKeywordsFewerThanN(t *testing.T) {
	got := TopKeywords(map[string]int{"president": 1}, 10)
	if len(got) != 1 {
		t.Errorf("TopKeywords() returned %d entries, want 1", len(got))
	}
}

func TestReduceEmpty(t *testing.T) {
	if got := Reduce(nil); len(got) != 0 {
		t.Errorf("Reduce(nil) = %v, want empty", got)
	}
}
