package pick

import (
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/prodsearch/internal/catalog"
	"github.com/Paintersrp/prodsearch/internal/fuzzy"
	"github.com/Paintersrp/prodsearch/internal/fzf"
	"github.com/Paintersrp/prodsearch/internal/state"
	"github.com/Paintersrp/prodsearch/pkg/shared/arg"
	"github.com/Paintersrp/prodsearch/pkg/shared/flags"
)

type selector interface {
	Select([]fuzzy.Result[catalog.Record]) (fuzzy.Result[catalog.Record], error)
}

var (
	newSelector = func(header, query string) selector {
		return fzf.NewFuzzyFinder(header, query)
	}
	writeClipboard = clipboard.WriteAll
)

func NewCmdPick(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pick [query...]",
		Aliases: []string{"p"},
		Short:   "Choose a product interactively",
		Long: heredoc.Doc(`
			Rank the whole catalog against the query and open an interactive finder over the
			ranked list, best match first. The preview pane shows how each product matched and
			all of its fields. The chosen product's name is printed, and copied to the clipboard
			with --copy.
		`),
		Example: heredoc.Doc(`
			prodsearch pick blue
			prodsearch pick "mango ice" --copy
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			copyFlag, err := flags.HandleCopy(cmd)
			if err != nil {
				return err
			}

			cat, err := s.LoadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			query := arg.HandleQuery(args)
			opts := s.Config.Search.Options()
			opts.Limit = cat.Len()
			results := cat.Search(query, opts)

			header := fmt.Sprintf("%d products", len(results))
			if query != "" {
				header = fmt.Sprintf("%d products ranked for %q", len(results), query)
			}

			chosen, err := newSelector(header, query).Select(results)
			if err != nil {
				if errors.Is(err, fzf.ErrNoSelection) {
					fmt.Fprintln(cmd.ErrOrStderr(), "No product selected")
					return nil
				}
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), chosen.Text)

			if copyFlag {
				if err := writeClipboard(chosen.Text); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "Copied to clipboard")
			}
			return nil
		},
	}

	flags.AddCopy(cmd)

	return cmd
}
