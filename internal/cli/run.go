package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/nanolca/internal/config"
	"github.com/rshade/nanolca/internal/lca"
	"github.com/rshade/nanolca/internal/logging"
	"github.com/rshade/nanolca/internal/report"
)

// RunParams holds the flags of the interactive assessment.
type RunParams struct {
	NoChart bool
}

// Chart sizing against the terminal.
const (
	chartReservedCols = 40
	maxChartWidth     = 80
	minChartWidth     = 10
)

// executeRun derives the EGS baseline, resolves the nanoparticle at the
// console, evaluates the scenario and presents it.
func executeRun(cmd *cobra.Command, params RunParams) error {
	ctx := cmd.Context()
	cfg := configFromContext(ctx)
	log := logging.FromContext(ctx).With().Str("component", "run").Logger()

	if err := validateOutputFormat(cfg.Output.Format); err != nil {
		return err
	}

	catalog, err := cfg.BuildCatalog()
	if err != nil {
		return fmt.Errorf("building catalog: %w", err)
	}

	baseline := lca.DeriveEGSBaseline(lca.SwissEGS())

	out := cmd.OutOrStdout()
	jsonOutput := cfg.Output.Format == config.OutputJSON

	// Prompts must not interleave with a JSON document on stdout.
	promptOut := out
	if jsonOutput {
		promptOut = cmd.ErrOrStderr()
	} else if err = report.WriteBaselineSummary(out, baseline); err != nil {
		return err
	}

	console := NewConsole(cmd.InOrStdin(), promptOut)
	sel, err := PromptSelection(console)
	if err != nil {
		return err
	}

	resolver := lca.NewResolver(catalog, &consoleEntry{console: console})
	res, err := resolver.Resolve(ctx, sel.Name, sel.MassFraction)
	if err != nil {
		return err
	}

	scenario := lca.Run(ctx, lca.Water(), res, lca.DefaultGWP())
	log.Info().
		Str("nanoparticle", scenario.Record.Name).
		Stringer("source", scenario.Source).
		Msg("assessment complete")

	if jsonOutput {
		return report.WriteJSON(out, report.NewDocument(scenario, baseline))
	}
	return presentText(out, scenario, baseline, params, chartWidth(out, cfg))
}

// presentText prints the report followed by the two charts.
func presentText(w io.Writer, sc lca.Scenario, baseline lca.EGSBaseline, params RunParams, width int) error {
	if err := report.WriteScenarioReport(w, sc); err != nil {
		return err
	}
	if params.NoChart {
		return nil
	}

	_, err := fmt.Fprintf(w, "\n%s\n%s", report.ScenarioChart(sc, width), report.ComparisonChart(sc, baseline, width))
	return err
}

// chartWidth returns the configured bar width, or one sized to the terminal
// behind w when it is one.
func chartWidth(w io.Writer, cfg *config.Config) int {
	if cfg.Output.ChartWidth > 0 {
		return cfg.Output.ChartWidth
	}

	f, ok := w.(*os.File)
	if !ok || !isTerminal(f) {
		return config.DefaultChartWidth
	}

	cols, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return config.DefaultChartWidth
	}
	return max(minChartWidth, min(maxChartWidth, cols-chartReservedCols))
}
