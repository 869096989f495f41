package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/nanolca/internal/config"
	"github.com/rshade/nanolca/internal/report"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the configuration file for syntax and semantic correctness.

This includes:
- Output format and chart width
- Logging level and format
- Every catalog entry has two energy and two water bounds`,
		Example: `  # Validate current configuration
  nanolca config validate

  # Validate and show detailed information
  nanolca config validate --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg := configFromContext(cmd.Context())

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("Configuration is valid (%s)\n", cfg.ConfigPath())

	if verbose {
		printVerboseDetails(cmd, cfg)
	}
	return nil
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Output format: %s\n", cfg.Output.Format)
	if cfg.Output.ChartWidth > 0 {
		cmd.Printf("  Chart width: %d\n", cfg.Output.ChartWidth)
	} else {
		cmd.Println("  Chart width: automatic")
	}
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	cmd.Printf("  Logging format: %s\n", cfg.Logging.Format)

	printCatalogDetails(cmd, cfg)
}

// printCatalogDetails prints the configured catalog entries.
func printCatalogDetails(cmd *cobra.Command, cfg *config.Config) {
	records, err := cfg.CatalogRecords()
	if err != nil || len(records) == 0 {
		cmd.Println("  No catalog entries configured")
		return
	}

	cmd.Printf("  Catalog entries: %d\n", len(records))
	for _, rec := range records {
		cmd.Printf("    - %s (cost: %s $/kg)\n", rec.Name, report.FormatCompact(rec.CostPerKg))
	}
}
