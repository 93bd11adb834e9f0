package langid

import (
	"reflect"
	"testing"
)

func TestDetect(t *testing.T) {
	d := NewDetector()

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "english",
			text: "George Washington was an American military officer, statesman, and Founding Father who served as the first president of the United States.",
			want: "en",
		},
		{
			name: "french",
			text: "Napoléon Bonaparte est un militaire et homme d'État français, premier empereur des Français du 18 mai 1804 au 6 avril 1814.",
			want: "fr",
		},
		{
			name: "russian",
			text: "Владимир Ильич Ленин — российский революционер, крупный теоретик марксизма, советский политический и государственный деятель.",
			want: "ru",
		},
		{
			name: "empty",
			text: "   ",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Detect(tt.text); got != tt.want {
				t.Errorf("Detect() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDistributionAndFormat(t *testing.T) {
	d := NewDetector()

	dist := d.Distribution([]string{
		"George Washington was an American military officer, statesman, and Founding Father who served as the first president.",
		"Abraham Lincoln was an American lawyer and statesman who served as the sixteenth president of the United States.",
		"Napoléon Bonaparte est un militaire et homme d'État français, premier empereur des Français.",
		"",
	})

	if dist["en"] != 2 {
		t.Errorf("Distribution()[en] = %d, want 2", dist["en"])
	}
	if dist["fr"] != 1 {
		t.Errorf("Distribution()[fr] = %d, want 1", dist["fr"])
	}

	got := Format(dist)
	want := []string{"en:2", "fr:1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Format() = %v, want %v", got, want)
	}
}
