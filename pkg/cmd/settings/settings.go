package settings

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/prodsearch/internal/config"
	"github.com/Paintersrp/prodsearch/internal/state"
)

const redacted = "********"

func NewCmdSettings(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Aliases: []string{"settings"},
		Short:   "Create or inspect the configuration file",
		Long: heredoc.Doc(`
			Manage the prodsearch configuration file. Flags given to the root command, such as
			--catalog or --limit, are included in what init writes and show prints.
		`),
	}

	cmd.AddCommand(
		newCmdInit(s),
		newCmdShow(s),
	)

	return cmd
}

func newCmdInit(s *state.State) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the configuration file",
		Example: heredoc.Doc(`
			prodsearch --catalog ./products.yaml config init
			prodsearch --catalog s3://inventory/products.json config init --force
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s.Config.SetPath(s.ConfigPath)

			if force {
				if err := s.Config.Save(); err != nil {
					return err
				}
			} else {
				created, err := config.EnsureConfigExists(s.Config)
				if err != nil {
					return err
				}
				if !created {
					return fmt.Errorf("config already exists at %s, use --force to overwrite", s.ConfigPath)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", s.ConfigPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration file")

	return cmd
}

func newCmdShow(s *state.State) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(s.Config)
			}

			shown := *s.Config
			if shown.S3.SecretAccessKey != "" {
				shown.S3.SecretAccessKey = redacted
			}

			data, err := yaml.Marshal(&shown)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "# %s\n", s.ConfigPath)
			_, err = out.Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON (secrets omitted)")

	return cmd
}
