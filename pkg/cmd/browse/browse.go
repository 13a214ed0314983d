package browse

import (
	"fmt"
	"log"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/prodsearch/internal/state"
	browsetui "github.com/Paintersrp/prodsearch/internal/tui/browse"
	"github.com/Paintersrp/prodsearch/pkg/shared/flags"
)

var (
	runBrowser     = browsetui.Run
	writeClipboard = clipboard.WriteAll
)

func NewCmdBrowse(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "browse",
		Aliases: []string{"b", "ui"},
		Short:   "Search the catalog as you type",
		Long: heredoc.Doc(`
			Open a full-screen browser that re-ranks the catalog on every keystroke.

			Results are colored by how they matched and by their similarity to the query.
			Local catalog files are watched and reloaded when they change. Press enter to
			print the highlighted product, ctrl+y to copy it, esc to quit.
		`),
		Example: heredoc.Doc(`
			prodsearch browse
			prodsearch browse --catalog s3://inventory/products.json
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			copyFlag, err := flags.HandleCopy(cmd)
			if err != nil {
				return err
			}

			if _, err := s.LoadCatalog(cmd.Context()); err != nil {
				return err
			}

			if _, err := s.Watch(); err != nil {
				log.Printf("browse: catalog changes will not be picked up: %v", err)
			}
			defer s.Close()

			chosen, ok, err := runBrowser(s)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), chosen.Text)
			if copyFlag {
				if err := writeClipboard(chosen.Text); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
			}
			return nil
		},
	}

	flags.AddCopy(cmd)

	return cmd
}
