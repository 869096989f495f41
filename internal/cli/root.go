// Package cli implements the nanolca command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/nanolca/internal/config"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

type configKey struct{}

func contextWithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// configFromContext returns the config loaded by the root command, or defaults.
func configFromContext(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok && cfg != nil {
		return cfg
	}
	return config.New()
}

// NewRootCmd creates the root Cobra command for the nanolca CLI.
// Run without arguments it performs one interactive nanofluid assessment.
func NewRootCmd(ver string) *cobra.Command {
	var params RunParams

	cmd := &cobra.Command{
		Use:   "nanolca",
		Short: "Nanofluid life-cycle assessment calculator",
		Long: `nanolca estimates carbon footprint, cumulative energy demand, toxicity,
water footprint and cost for a water-based nanofluid, and compares them with
the Swiss EGS (3.5 km, 50 years) drilling baseline.

The nanoparticle is chosen interactively. Names missing from the catalog are
completed by entering their parameters by hand.`,
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupCommand(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeRun(cmd, params)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file (default $NANOLCA_HOME/config.yaml or ~/.nanolca/config.yaml)")
	cmd.PersistentFlags().String("output", config.OutputText, "output format (text, json)")

	cmd.Flags().BoolVar(&params.NoChart, "no-chart", false, "skip the terminal bar charts")

	cmd.AddCommand(NewCatalogCmd(), NewBaselineCmd(), newConfigCmd())
	return cmd
}

const rootCmdExample = `  # Assess a nanofluid interactively
  nanolca

  # Same, machine-readable
  nanolca --output json

  # List the nanoparticle catalog
  nanolca catalog

  # Print the EGS drilling baseline
  nanolca baseline

  # Write a default configuration file
  nanolca config init`

// setupCommand loads configuration, builds the logger and stores both in the
// command context. The output format is checked by the commands that write
// output, so "config validate" can report it with every other problem.
func setupCommand(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("output") {
		cfg.Output.Format, _ = cmd.Flags().GetString("output")
	}

	ctx := setupLogging(cmd, cfg)
	cmd.SetContext(contextWithConfig(ctx, cfg))
	return nil
}

func validateOutputFormat(format string) error {
	switch format {
	case config.OutputText, config.OutputJSON:
		return nil
	default:
		return fmt.Errorf("%w %q (want text or json)", ErrUnknownOutputFormat, format)
	}
}

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigValidateCmd())
	return cmd
}

// ExitCode maps an error returned by the root command to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrInvalidNumber), errors.Is(err, ErrInputClosed):
		return ExitCodeInput
	default:
		return 1
	}
}
