package analytics

import (
	"reflect"
	"testing"
)

func TestWordFrequency(t *testing.T) {
	a := &Analytics{}

	tests := []struct {
		name string
		text string
		want map[string]int
	}{
		{
			name: "stopwords and punctuation removed",
			text: "He was the prime minister, and the minister resigned.",
			want: map[string]int{"prime": 1, "minister": 2, "resigned": 1},
		},
		{
			name: "case folded",
			text: "Belgium belgium BELGIUM",
			want: map[string]int{"belgium": 3},
		},
		{
			name: "non-ascii words survive trimming",
			text: "Пётр I правил Россией.",
			want: map[string]int{"пётр": 1, "правил": 1, "россией": 1},
		},
		{
			name: "empty text",
			text: "",
			want: map[string]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.WordFrequency(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("WordFrequency(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestIsStopword(t *testing.T) {
	if !IsStopword("The") {
		t.Error("IsStopword(\"The\") = false, want true")
	}
	if IsStopword("president") {
		t.Error("IsStopword(\"president\") = true, want false")
	}
}

func TestTopNWords(t *testing.T) {
	a := &Analytics{}
	text := "president president president minister minister war"

	got := a.TopNWords(text, 2)
	if len(got) != 2 {
		t.Fatalf("TopNWords() returned %d words, want 2", len(got))
	}
	if got[0] != "president" {
		t.Errorf("TopNWords()[0] = %q, want %q", got[0], "president")
	}
	if got[1] != "minister" {
		t.Errorf("TopNWords()[1] = %q, want %q", got[1], "minister")
	}
}

func TestTopNWordsFewerThanN(t *testing.T) {
	a := &Analytics{}
	got := a.TopNWords("president", 10)
	if len(got) != 1 {
		t.Errorf("TopNWords() returned %d words, want 1", len(got))
	}
}
