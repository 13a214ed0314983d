package fuzzy

import (
	"testing"

	lfuzzy "github.com/lithammer/fuzzysearch/fuzzy"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"Blue", "blue", 1},
		{"mango", "mango", 0},
		{"日本", "日本語", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"|"+tt.b, func(t *testing.T) {
			if got := Distance(tt.a, tt.b); got != tt.want {
				t.Fatalf("Distance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if got := Distance(tt.b, tt.a); got != tt.want {
				t.Fatalf("Distance(%q, %q) = %d, want %d", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestDistanceAgreesWithReference(t *testing.T) {
	words := []string{
		"", "a", "blue razz", "Blue Razz", "super blue", "strawberry kiwi",
		"strawberry banana", "kiwi mango", "mint", "menthol", "ice", "Файл",
	}

	for _, a := range words {
		for _, b := range words {
			got := Distance(a, b)
			want := lfuzzy.LevenshteinDistance(a, b)
			if got != want {
				t.Fatalf("Distance(%q, %q) = %d, reference says %d", a, b, got, want)
			}
		}
	}
}

func TestSimilarityBounds(t *testing.T) {
	words := []string{"", "x", "Blue", "blue", "Blue Razz", "Super Blue", "kiwi mango", "strawberry"}

	for _, a := range words {
		if got := Similarity(a, a); got != 1 {
			t.Fatalf("expected Similarity(%q, %q) == 1, got %v", a, a, got)
		}
		for _, b := range words {
			got := Similarity(a, b)
			if got < 0 || got > 1 {
				t.Fatalf("Similarity(%q, %q) = %v out of [0,1]", a, b, got)
			}
		}
	}
}

func TestSimilarityIgnoresCase(t *testing.T) {
	if got := Similarity("BLUE RAZZ", "blue razz"); got != 1 {
		t.Fatalf("expected case-insensitive similarity of 1, got %v", got)
	}

	// One substitution in four runes.
	if got := Similarity("mint", "MINE"); got != 0.75 {
		t.Fatalf("expected 0.75, got %v", got)
	}
}

func TestSimilarityDecreasesWithDistance(t *testing.T) {
	closer := Similarity("mango", "mangp")
	farther := Similarity("mango", "mxnxp")
	if !(closer > farther) {
		t.Fatalf("expected %v > %v", closer, farther)
	}
}
