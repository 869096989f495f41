package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/nanolca/internal/config"
	"github.com/rshade/nanolca/internal/lca"
	"github.com/rshade/nanolca/internal/report"
)

// NewBaselineCmd creates the baseline command, which prints the Swiss EGS
// drilling baseline without running a nanofluid assessment.
func NewBaselineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "baseline",
		Short: "Print the Swiss EGS drilling baseline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := configFromContext(cmd.Context())
			if err := validateOutputFormat(cfg.Output.Format); err != nil {
				return err
			}
			baseline := lca.DeriveEGSBaseline(lca.SwissEGS())
			out := cmd.OutOrStdout()

			if cfg.Output.Format == config.OutputJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(baseline)
			}

			if err := report.WriteBaselineSummary(out, baseline); err != nil {
				return err
			}
			for _, ind := range lca.Indicators() {
				fmt.Fprintf(out, "  %-26s %s\n", ind.String(), report.FormatCompact(baseline.Results.Value(ind)))
			}
			return nil
		},
	}
}
