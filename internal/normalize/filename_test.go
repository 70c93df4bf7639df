package normalize_test

import (
	"testing"

	"github.com/openworship/songsheet/internal/normalize"
)

func TestSongNameFromFilename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{"basic", "Amazing Grace.txt", "amazing grace"},
		{"lyrics suffix", "Amazing Grace Lyrics.txt", "amazing grace"},
		{"dashed suffix", "How Great Thou Art - Slides.txt", "how great thou art"},
		{"sheet suffix", "Oceans_sheet.txt", "oceans"},
		{"underscore separators", "what_a_beautiful_name_lyrics.txt", "what a beautiful name"},
		{"no extension", "Holy Holy Holy", "holy holy holy"},
		{"punctuation", "It's Well!.txt", "its well"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalize.SongNameFromFilename(tt.filename); got != tt.want {
				t.Errorf("SongNameFromFilename(%q) = %q, want %q", tt.filename, got, tt.want)
			}
		})
	}
}

func TestTitleFromFilename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{"keeps casing", "Amazing Grace.txt", "Amazing Grace"},
		{"strips suffix", "Amazing Grace - Lyrics.txt", "Amazing Grace"},
		{"collapses underscore remainder", "How  Great   Thou Art.txt", "How Great Thou Art"},
		{"underscores become spaces", "how_great_thou_art_slides.txt", "How Great Thou Art"},
		{"hyphens become spaces", "in-christ-alone.txt", "In Christ Alone"},
		{"no extension", "Holy Holy Holy", "Holy Holy Holy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalize.TitleFromFilename(tt.filename); got != tt.want {
				t.Errorf("TitleFromFilename(%q) = %q, want %q", tt.filename, got, tt.want)
			}
		})
	}
}

func TestForComparison(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Amazing Grace!", "amazing grace"},
		{"  How  Great   Thou Art  ", "how great thou art"},
		{"It's Well", "its well"},
	}

	for _, tt := range tests {
		if got := normalize.ForComparison(tt.input); got != tt.want {
			t.Errorf("ForComparison(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSimilarity(t *testing.T) {
	if got := normalize.Similarity("amazing grace", "amazing grace"); got != 1.0 {
		t.Errorf("exact match = %v, want 1.0", got)
	}

	if got := normalize.Similarity("amazing grace", "amazing grace how sweet"); got <= 0.5 || got >= 1.0 {
		t.Errorf("containment = %v, want between 0.5 and 1.0", got)
	}

	if got := normalize.Similarity("amazing grace", "grace amazing"); got != 1.0 {
		t.Errorf("word overlap reordered = %v, want 1.0", got)
	}

	if got := normalize.Similarity("amazing grace", "amazing love"); got <= 0 || got >= 1.0 {
		t.Errorf("partial overlap = %v, want between 0 and 1", got)
	}

	if got := normalize.Similarity("amazing grace", "holy holy"); got != 0 {
		t.Errorf("no overlap = %v, want 0", got)
	}

	if got := normalize.Similarity("", "amazing grace"); got != 0 {
		t.Errorf("empty input = %v, want 0", got)
	}
}

func TestIsLikelyTitle(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		filename string
		want     bool
	}{
		{"exact", "Amazing Grace", "amazing grace", true},
		{"punctuation", "Amazing Grace!", "amazing grace", true},
		{"case", "AMAZING GRACE", "amazing grace", true},
		{"different song", "Holy Holy Holy", "amazing grace", false},
		{"too long", "Amazing grace how sweet the sound that saved a wretch like me I once was lost but now am found", "amazing grace", false},
		{"too short", "A", "amazing grace", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalize.IsLikelyTitle(tt.text, tt.filename); got != tt.want {
				t.Errorf("IsLikelyTitle(%q, %q) = %v, want %v", tt.text, tt.filename, got, tt.want)
			}
		})
	}
}
