package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/rshade/nanolca/internal/lca"
	"github.com/rshade/nanolca/internal/logging"
)

// Validate checks c for values Load accepts syntactically but nanolca cannot
// use. All problems are reported together.
func (c *Config) Validate() error {
	var errs []error

	switch c.Output.Format {
	case OutputText, OutputJSON:
	default:
		errs = append(errs, fmt.Errorf("%w: output.format %q (want text or json)", ErrInvalidSetting, c.Output.Format))
	}
	if c.Output.ChartWidth < 0 {
		errs = append(errs, fmt.Errorf("%w: output.chart_width %d is negative", ErrInvalidSetting, c.Output.ChartWidth))
	}

	if c.Logging.Level != "" {
		if _, err := zerolog.ParseLevel(strings.ToLower(c.Logging.Level)); err != nil {
			errs = append(errs, fmt.Errorf("%w: logging.level %q", ErrInvalidSetting, c.Logging.Level))
		}
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", logging.FormatConsole, logging.FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("%w: logging.format %q (want console or json)", ErrInvalidSetting, c.Logging.Format))
	}

	records, err := c.CatalogRecords()
	if err != nil {
		errs = append(errs, fmt.Errorf("%w: catalog %w", ErrInvalidSetting, err))
	}
	gwp := lca.DefaultGWP()
	for _, rec := range records {
		if missing := lca.UnweightedGases(rec.Emissions, gwp); len(missing) > 0 {
			errs = append(errs, fmt.Errorf("%w: catalog %s emissions: no GWP factor for %v",
				ErrInvalidSetting, rec.Name, missing))
		}
	}

	return errors.Join(errs...)
}
