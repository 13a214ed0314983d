package root

import (
	"io"
	"log"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Paintersrp/prodsearch/internal/constants"
	"github.com/Paintersrp/prodsearch/internal/state"
	"github.com/Paintersrp/prodsearch/pkg/cmd/browse"
	"github.com/Paintersrp/prodsearch/pkg/cmd/labels"
	"github.com/Paintersrp/prodsearch/pkg/cmd/pick"
	"github.com/Paintersrp/prodsearch/pkg/cmd/search"
	"github.com/Paintersrp/prodsearch/pkg/cmd/settings"
)

// NewCmdRoot builds the command tree. s is filled in before any subcommand
// runs, from the config file and the flags and PRODSEARCH_* variables that
// override it.
func NewCmdRoot(s *state.State) (*cobra.Command, error) {
	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   constants.AppName,
		Short: "Rank retail products by how well they match a search query.",
		Long: heredoc.Doc(`
			Search a product catalog the way the storefront search box does: exact names first,
			then names starting with the query, names containing it, names sharing a word with
			it, and everything else ordered by edit-distance similarity.

			Catalogs are read from YAML, JSON or CSV files, from objects in S3-compatible
			storage, or from a Postgres query.
		`),
		Example: heredoc.Doc(`
			prodsearch --catalog ./products.yaml search blue razz
			prodsearch pick mango --copy
			prodsearch browse
		`),
		Version:      constants.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			configureLogging(cmd.ErrOrStderr(), v.GetBool("verbose"))
			return loadState(s, v)
		},
	}

	pf := cmd.PersistentFlags()
	pf.String("config", "", "config file (default is $HOME/.prodsearch/config.yaml)")
	pf.String("catalog", "", "Catalog source: a file path, s3://bucket/key or a postgres:// DSN")
	pf.String("catalog-format", "", "Catalog format: yaml, json or csv (default from the file extension)")
	pf.StringP("key", "k", "", "Record field to match on (default \"name\")")
	pf.IntP("limit", "l", 0, "Maximum number of results (default 10)")
	pf.Float64P("threshold", "t", 0, "Drop results scoring below this value")
	pf.BoolP("verbose", "v", false, "Log warnings such as skipped catalog entries")
	if err := v.BindPFlags(pf); err != nil {
		return nil, err
	}

	cmd.AddCommand(
		search.NewCmdSearch(s),
		pick.NewCmdPick(s),
		browse.NewCmdBrowse(s),
		labels.NewCmdLabels(),
		settings.NewCmdSettings(s),
	)

	return cmd, nil
}

func loadState(s *state.State, v *viper.Viper) error {
	loaded, err := state.NewState(v.GetString("config"))
	if err != nil {
		return err
	}
	if err := loaded.Config.ApplyOverrides(v); err != nil {
		return err
	}

	*s = *loaded
	return nil
}

func configureLogging(w io.Writer, verbose bool) {
	log.SetFlags(0)
	log.SetPrefix(constants.AppName + ": ")
	if verbose {
		log.SetOutput(w)
		return
	}
	log.SetOutput(io.Discard)
}
