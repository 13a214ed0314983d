package search

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/goccy/go-json"

	"github.com/Paintersrp/prodsearch/internal/catalog"
	"github.com/Paintersrp/prodsearch/internal/fuzzy"
	"github.com/Paintersrp/prodsearch/utils"
)

type result = fuzzy.Result[catalog.Record]

type jsonResult struct {
	Text       string          `json:"text"`
	Score      float64         `json:"score"`
	Similarity float64         `json:"similarity"`
	MatchType  fuzzy.MatchType `json:"match_type"`
	Label      string          `json:"label"`
	Hint       fuzzy.Hint      `json:"hint"`
	Quality    fuzzy.Quality   `json:"quality"`
	Record     catalog.Record  `json:"record"`
}

type jsonOutput struct {
	Query   string       `json:"query"`
	Count   int          `json:"count"`
	Results []jsonResult `json:"results"`
}

func renderJSON(w io.Writer, query string, results []result) error {
	out := jsonOutput{
		Query:   query,
		Count:   len(results),
		Results: make([]jsonResult, 0, len(results)),
	}
	for _, r := range results {
		p := fuzzy.Describe(r.MatchType)
		out.Results = append(out.Results, jsonResult{
			Text:       r.Text,
			Score:      r.Score,
			Similarity: r.Similarity,
			MatchType:  r.MatchType,
			Label:      p.Label,
			Hint:       p.Hint,
			Quality:    fuzzy.QualityOf(r.Similarity),
			Record:     r.Item,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// renderPlain writes one tab-separated line per result for scripts.
func renderPlain(w io.Writer, results []result) error {
	for _, r := range results {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\n", r.Text, r.MatchType, r.Score, r.Similarity); err != nil {
			return err
		}
	}
	return nil
}

var hintColors = map[fuzzy.Hint]lipgloss.Color{
	fuzzy.HintSuccess:   lipgloss.Color("#2E8B57"),
	fuzzy.HintPrimary:   lipgloss.Color("#0A84FF"),
	fuzzy.HintInfo:      lipgloss.Color("#17A2B8"),
	fuzzy.HintWarning:   lipgloss.Color("#D98E04"),
	fuzzy.HintSecondary: lipgloss.Color("#6C757D"),
	fuzzy.HintMuted:     lipgloss.Color("#888"),
}

func renderTable(w io.Writer, results []result) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(w, "No products match")
		return err
	}

	r := utils.NewRenderer(w)
	header := r.NewStyle().Bold(true).Foreground(lipgloss.Color("#0AF")).Padding(0, 1)
	cell := r.NewStyle().Padding(0, 1)

	rows := make([][]string, len(results))
	hints := make([]fuzzy.Hint, len(results))
	for i, res := range results {
		p := fuzzy.Describe(res.MatchType)
		hints[i] = p.Hint
		rows[i] = []string{
			fmt.Sprintf("%d", i+1),
			res.Text,
			p.Label,
			fmt.Sprintf("%.2f", res.Score),
			fmt.Sprintf("%.0f%%", res.Similarity*100),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(r.NewStyle().Foreground(lipgloss.Color("#334455"))).
		Headers("#", "Product", "Match", "Score", "Similarity").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			// Row 0 is the header; data rows start at 1.
			if row == 0 {
				return header
			}
			if col == 2 && row-1 < len(hints) {
				return cell.Copy().Foreground(hintColors[hints[row-1]])
			}
			return cell
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func renderMarkdown(w io.Writer, query string, results []result) error {
	rendered, err := utils.RenderMarkdown(markdownReport(query, results), 0, utils.IsTerminal(w))
	if err != nil {
		return fmt.Errorf("search: render markdown: %w", err)
	}
	_, err = io.WriteString(w, rendered)
	return err
}

func markdownReport(query string, results []result) string {
	var b strings.Builder

	if query == "" {
		b.WriteString("# All products\n\n")
	} else {
		fmt.Fprintf(&b, "# Results for %q\n\n", query)
	}
	if len(results) == 0 {
		b.WriteString("No products match.\n")
		return b.String()
	}

	b.WriteString("| # | Product | Match | Score | Similarity |\n")
	b.WriteString("| --- | --- | --- | --- | --- |\n")
	for i, r := range results {
		fmt.Fprintf(&b, "| %d | %s | %s | %.2f | %.0f%% |\n",
			i+1,
			strings.ReplaceAll(r.Text, "|", `\|`),
			fuzzy.Describe(r.MatchType).Label,
			r.Score,
			r.Similarity*100,
		)
	}
	return b.String()
}
