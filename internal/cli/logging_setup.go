package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rshade/nanolca/internal/config"
	"github.com/rshade/nanolca/internal/logging"
)

// setupLogging configures logging from config, environment and the --debug
// flag, and returns a context carrying the logger and run ID.
func setupLogging(cmd *cobra.Command, cfg *config.Config) context.Context {
	loggingCfg := cfg.Logging.ToLoggingConfig()

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = logging.FormatConsole
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	runID := logging.GetOrGenerateRunID(ctx)
	ctx = logging.ContextWithRunID(ctx, runID)

	base := logging.NewLogger(loggingCfg, cmd.ErrOrStderr()).With().Str("run_id", runID).Logger()
	logger := logging.ComponentLogger(base, "cli")
	ctx = base.WithContext(ctx)

	logger.Debug().
		Str("command", cmd.Name()).
		Str("config", cfg.ConfigPath()).
		Str("output", cfg.Output.Format).
		Msg("command started")

	return ctx
}
