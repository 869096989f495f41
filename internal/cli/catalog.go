package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/nanolca/internal/config"
	"github.com/rshade/nanolca/internal/lca"
	"github.com/rshade/nanolca/internal/report"
)

// NewCatalogCmd creates the catalog command, which lists the built-in
// nanoparticles together with any configured in config.yaml.
func NewCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the nanoparticle catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := configFromContext(cmd.Context())
			if err := validateOutputFormat(cfg.Output.Format); err != nil {
				return err
			}

			catalog, err := cfg.BuildCatalog()
			if err != nil {
				return fmt.Errorf("building catalog: %w", err)
			}

			out := cmd.OutOrStdout()
			if cfg.Output.Format == config.OutputJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(catalog.Records())
			}

			_, err = fmt.Fprint(out, report.RenderCatalogTable(catalog.Records(), lca.Water()))
			return err
		},
	}
}
