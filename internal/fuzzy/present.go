package fuzzy

// Hint names the visual treatment a UI should give a match type. The values
// mirror the badge variants used by the dashboard.
type Hint string

const (
	HintSuccess   Hint = "success"
	HintPrimary   Hint = "primary"
	HintInfo      Hint = "info"
	HintWarning   Hint = "warning"
	HintSecondary Hint = "secondary"
	HintMuted     Hint = "muted"
)

// Presentation is the display form of a MatchType.
type Presentation struct {
	Label string
	Hint  Hint
}

var presentations = map[MatchType]Presentation{
	MatchExact:      {Label: "Exact match", Hint: HintSuccess},
	MatchStartsWith: {Label: "Starts with", Hint: HintPrimary},
	MatchContains:   {Label: "Contains", Hint: HintInfo},
	MatchWord:       {Label: "Word match", Hint: HintWarning},
	MatchSimilar:    {Label: "Similar", Hint: HintSecondary},
	MatchAll:        {Label: "All products", Hint: HintMuted},
}

// MatchTypes lists every match type in precedence order, MatchAll last.
func MatchTypes() []MatchType {
	return []MatchType{
		MatchExact,
		MatchStartsWith,
		MatchContains,
		MatchWord,
		MatchSimilar,
		MatchAll,
	}
}

// Describe returns the label and hint for mt. Unknown types are shown by
// their raw name.
func Describe(mt MatchType) Presentation {
	if p, ok := presentations[mt]; ok {
		return p
	}
	return Presentation{Label: string(mt), Hint: HintMuted}
}

// Quality is a coarse similarity bucket used for styling.
type Quality string

const (
	QualityHigh   Quality = "high"
	QualityMedium Quality = "medium"
	QualityLow    Quality = "low"
)

const (
	highSimilarity   = 0.8
	mediumSimilarity = 0.5
)

// QualityOf buckets a similarity in [0, 1].
func QualityOf(similarity float64) Quality {
	switch {
	case similarity >= highSimilarity:
		return QualityHigh
	case similarity >= mediumSimilarity:
		return QualityMedium
	default:
		return QualityLow
	}
}
