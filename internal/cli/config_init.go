package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/nanolca/internal/config"
)

// NewConfigInitCmd creates the config init command, which writes a
// configuration file holding the default values.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Example: `  # Create ~/.nanolca/config.yaml
  nanolca config init

  # Create configuration at a custom path, overwriting existing
  nanolca config init --config ./nanolca.yaml --force`,
		Args: cobra.NoArgs,
		// The existing file may be the broken one being replaced, so it is
		// not loaded.
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.New()
			cmd.SetContext(contextWithConfig(setupLogging(cmd, cfg), cfg))
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.New()
			if path, _ := cmd.Flags().GetString("config"); path != "" {
				cfg.SetConfigPath(path)
			}

			if !force {
				if _, err := os.Stat(cfg.ConfigPath()); err == nil {
					return errors.New("configuration file already exists, use --force to overwrite")
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("cannot access config path %s: %w", cfg.ConfigPath(), err)
				}
			}

			if err := cfg.Save(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			cmd.Printf("Configuration initialized at %s\n", cfg.ConfigPath())
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	return cmd
}
