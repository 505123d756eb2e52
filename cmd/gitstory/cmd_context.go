package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haldun-rowe/gitstory/internal/connector"
	"github.com/haldun-rowe/gitstory/internal/render"
)

func newContextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "context",
		Short: "Load and render external review context for the repository",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()

			loader := connector.NewLoader(
				connector.NewOSFileAccess(),
				redactionEngine(cfg),
				cfg.Ingest.ConnectorProviders,
			)
			state := loader.Load(cmd.Context(), globalOpts.RepoRoot)

			out, err := render.ContextState(state)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
