package labels

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/prodsearch/internal/fuzzy"
	"github.com/Paintersrp/prodsearch/utils"
)

func NewCmdLabels() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "labels",
		Short: "Show how each match type is labelled",
		Long: heredoc.Doc(`
			List every match type in ranking order with its display label, the style hint used
			to color it, and the base score of its band.
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			r := utils.NewRenderer(out)

			rows := make([][]string, 0, len(fuzzy.MatchTypes()))
			for _, mt := range fuzzy.MatchTypes() {
				p := fuzzy.Describe(mt)
				rows = append(rows, []string{
					string(mt),
					p.Label,
					string(p.Hint),
					fmt.Sprintf("%.0f", fuzzy.BaseScore(mt)),
				})
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				BorderStyle(r.NewStyle().Foreground(lipgloss.Color("#334455"))).
				Headers("Type", "Label", "Hint", "Base").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					s := r.NewStyle().Padding(0, 1)
					// Row 0 is the header.
					if row == 0 {
						return s.Bold(true)
					}
					return s
				})

			_, err := fmt.Fprintln(out, t.Render())
			return err
		},
	}

	return cmd
}
