package config

import "github.com/rshade/nanolca/internal/logging"

// ToLoggingConfig converts the logging section for use with the logging package.
func (lc LoggingConfig) ToLoggingConfig() logging.Config {
	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
	}
}
