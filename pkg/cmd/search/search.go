package search

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/prodsearch/internal/state"
	"github.com/Paintersrp/prodsearch/pkg/shared/arg"
	"github.com/Paintersrp/prodsearch/pkg/shared/flags"
	"github.com/Paintersrp/prodsearch/utils"
)

func NewCmdSearch(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "search [query...]",
		Aliases: []string{"s", "find"},
		Short:   "Rank catalog products against a query",
		Long: heredoc.Doc(`
			Rank every product in the catalog against the query and print the best matches.

			Exact matches rank first, then names starting with the query, names containing it,
			names sharing a word with it, and finally everything else by edit-distance similarity.
			An empty query lists the first products in catalog order.
		`),
		Example: heredoc.Doc(`
			prodsearch search blue razz
			prodsearch search "mango ice" --limit 5 --format json
			prodsearch search strawberry --threshold 2
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := flags.HandleFormat(cmd)
			if err != nil {
				return err
			}

			cat, err := s.LoadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			query := arg.HandleQuery(args)
			results := cat.Search(query, s.Config.Search.Options())

			out := cmd.OutOrStdout()
			if format == "" {
				format = flags.FormatPlain
				if utils.IsTerminal(out) {
					format = flags.FormatTable
				}
			}

			switch format {
			case flags.FormatJSON:
				return renderJSON(out, query, results)
			case flags.FormatMarkdown:
				return renderMarkdown(out, query, results)
			case flags.FormatTable:
				return renderTable(out, results)
			default:
				return renderPlain(out, results)
			}
		},
	}

	flags.AddFormat(cmd)

	return cmd
}
