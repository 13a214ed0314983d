package fuzzy

import "strings"

// MatchType describes how a candidate matched the query.
type MatchType string

const (
	MatchExact      MatchType = "exact"
	MatchStartsWith MatchType = "starts_with"
	MatchContains   MatchType = "contains"
	MatchWord       MatchType = "word_match"
	MatchSimilar    MatchType = "similar"

	// MatchAll tags every result of a blank query.
	MatchAll MatchType = "all"
)

// Band floors. exact, starts_with and contains never overlap, and word_match
// never falls to similar. A short word_match text can reach past the floor of
// contains once similarity and length bonus are added.
const (
	ScoreExact      = 10.0
	ScoreStartsWith = 5.0
	ScoreContains   = 3.0
	ScoreWord       = 2.0
	ScoreSimilar    = 0.0
)

// Length bonus: texts shorter than LengthBonusPivot runes earn
// (LengthBonusPivot-len)/LengthBonusScale, at most 0.5.
const (
	LengthBonusPivot = 50
	LengthBonusScale = 100.0
)

// Classify assigns a match type and score to text for query. Both arguments
// must already be normalized (see normalize). The returned similarity is the
// edit-distance similarity of the two strings.
func Classify(query, text string) (MatchType, float64, float64) {
	sim := similarity(query, text)

	var (
		mt    MatchType
		score float64
	)
	switch {
	case text == query:
		mt, score = MatchExact, ScoreExact
	case strings.HasPrefix(text, query):
		mt, score = MatchStartsWith, ScoreStartsWith+sim
	case strings.Contains(text, query):
		mt, score = MatchContains, ScoreContains+sim
	case wordsOverlap(query, text):
		mt, score = MatchWord, ScoreWord+sim
	default:
		mt, score = MatchSimilar, ScoreSimilar+sim
	}

	return mt, score + lengthBonus(text), sim
}

// wordsOverlap reports whether any query word occurs inside any text word.
// A prefix is a substring, so one Contains check covers both.
func wordsOverlap(query, text string) bool {
	textWords := strings.Fields(text)
	for _, qw := range strings.Fields(query) {
		for _, tw := range textWords {
			if strings.Contains(tw, qw) {
				return true
			}
		}
	}
	return false
}

func lengthBonus(text string) float64 {
	n := runeLen(text)
	if n >= LengthBonusPivot {
		return 0
	}
	return float64(LengthBonusPivot-n) / LengthBonusScale
}

// normalize is the single place raw comparison text is cleaned up. Everything
// downstream assumes trimmed, lower-cased input.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// BaseScore is the floor of mt's band, before similarity and length bonus.
// MatchAll results always score 1; unknown types score 0.
func BaseScore(mt MatchType) float64 {
	switch mt {
	case MatchExact:
		return ScoreExact
	case MatchStartsWith:
		return ScoreStartsWith
	case MatchContains:
		return ScoreContains
	case MatchWord:
		return ScoreWord
	case MatchAll:
		return 1
	}
	return ScoreSimilar
}
