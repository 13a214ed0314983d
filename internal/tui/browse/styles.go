package browse

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Paintersrp/prodsearch/internal/fuzzy"
)

var (
	appStyle = lipgloss.NewStyle().Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0AF")).
			Background(lipgloss.Color("transparent")).
			Bold(true).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#0AF", Dark: "#0AF"})

	inputStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#334455")).
			Padding(0, 1)

	selectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#0AF")).
				Background(lipgloss.Color("#224"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888")).
			Italic(true)

	scoreStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888"))

	badgeBase = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color("#FFF"))
)

var hintColors = map[fuzzy.Hint]lipgloss.Color{
	fuzzy.HintSuccess:   lipgloss.Color("#2E8B57"),
	fuzzy.HintPrimary:   lipgloss.Color("#0A84FF"),
	fuzzy.HintInfo:      lipgloss.Color("#17A2B8"),
	fuzzy.HintWarning:   lipgloss.Color("#D98E04"),
	fuzzy.HintSecondary: lipgloss.Color("#6C757D"),
	fuzzy.HintMuted:     lipgloss.Color("#444"),
}

var qualityColors = map[fuzzy.Quality]lipgloss.Color{
	fuzzy.QualityHigh:   lipgloss.Color("#2E8B57"),
	fuzzy.QualityMedium: lipgloss.Color("#D98E04"),
	fuzzy.QualityLow:    lipgloss.Color("#C0392B"),
}

func badgeStyle(h fuzzy.Hint) lipgloss.Style {
	c, ok := hintColors[h]
	if !ok {
		c = hintColors[fuzzy.HintMuted]
	}
	return badgeBase.Copy().Background(c)
}

func qualityStyle(q fuzzy.Quality) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(qualityColors[q])
}
