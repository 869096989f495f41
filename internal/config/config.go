// Package config loads nanolca settings from ~/.nanolca/config.yaml and the
// NANOLCA_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rshade/nanolca/internal/logging"
)

// Environment variables recognised by Load.
const (
	EnvHome         = "NANOLCA_HOME"
	EnvLogLevel     = "NANOLCA_LOG_LEVEL"
	EnvLogFormat    = "NANOLCA_LOG_FORMAT"
	EnvOutputFormat = "NANOLCA_OUTPUT_FORMAT"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// DefaultChartWidth is the bar area width used when the terminal size is unknown.
const DefaultChartWidth = 40

const (
	configDirName  = ".nanolca"
	configFileName = "config.yaml"
)

// Config is the full nanolca configuration.
type Config struct {
	Output  OutputConfig                 `yaml:"output"`
	Logging LoggingConfig                `yaml:"logging"`
	Catalog map[string]NanoparticleEntry `yaml:"catalog,omitempty"`

	configPath string
}

// OutputConfig controls how results are presented.
type OutputConfig struct {
	// Format is "text" (report plus charts) or "json".
	Format string `yaml:"format"`

	// ChartWidth is the maximum bar length in cells. 0 means size to the terminal.
	ChartWidth int `yaml:"chart_width"`
}

// LoggingConfig controls diagnostic logging to stderr.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// New returns a Config holding defaults, pointed at the default path.
func New() *Config {
	return &Config{
		Output: OutputConfig{
			Format: OutputText,
		},
		Logging: LoggingConfig{
			Level:  logging.DefaultLevel,
			Format: logging.FormatConsole,
		},
		configPath: DefaultPath(),
	}
}

// Dir returns the nanolca home directory: $NANOLCA_HOME or ~/.nanolca.
func Dir() string {
	if home := os.Getenv(EnvHome); home != "" {
		return home
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return configDirName
	}
	return filepath.Join(userHome, configDirName)
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(Dir(), configFileName)
}

// Load reads the config at path (DefaultPath when empty) over the defaults
// and applies environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := New()
	if path != "" {
		cfg.configPath = path
	}

	if _, err := os.Stat(cfg.configPath); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("cannot access config path %s: %w", cfg.configPath, err)
		}
	} else if err = ShallowMergeYAML(cfg, cfg.configPath); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv(EnvOutputFormat); v != "" {
		c.Output.Format = strings.ToLower(v)
	}
}

// ConfigPath returns the file this Config was loaded from or will be saved to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath changes the file Save writes to.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Save writes the configuration as YAML, creating the parent directory.
func (c *Config) Save() error {
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	if err = os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", c.configPath, err)
	}
	return nil
}
