package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/nanolca/internal/config"
	"github.com/rshade/nanolca/internal/lca"
)

// isolate points NANOLCA_HOME at a temp dir and clears env overrides.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvLogFormat, "")
	t.Setenv(config.EnvOutputFormat, "")
	return home
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNew_Defaults(t *testing.T) {
	home := isolate(t)

	cfg := config.New()
	assert.Equal(t, config.OutputText, cfg.Output.Format)
	assert.Equal(t, 0, cfg.Output.ChartWidth)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Empty(t, cfg.Catalog)
	assert.Equal(t, filepath.Join(home, "config.yaml"), cfg.ConfigPath())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	isolate(t)

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.New().Output, cfg.Output)
	assert.Equal(t, config.New().Logging, cfg.Logging)
}

func TestLoad_ExplicitPath(t *testing.T) {
	isolate(t)
	path := writeConfig(t, t.TempDir(), `
output:
  format: json
  chart_width: 25
logging:
  level: debug
  format: json
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.ConfigPath())
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, 25, cfg.Output.ChartWidth)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_DefaultPathFromHome(t *testing.T) {
	home := isolate(t)
	writeConfig(t, home, "logging:\n  level: error\n")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Logging.Level)
	// Output section absent: defaults kept.
	assert.Equal(t, config.OutputText, cfg.Output.Format)
}

func TestLoad_SectionReplacesDefaults(t *testing.T) {
	isolate(t)
	path := writeConfig(t, t.TempDir(), "logging:\n  level: info\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.Logging.Format, "a present section replaces the whole default section")
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	path := writeConfig(t, t.TempDir(), "logging:\n  level: info\n  format: console\n")
	t.Setenv(config.EnvLogLevel, "trace")
	t.Setenv(config.EnvLogFormat, "json")
	t.Setenv(config.EnvOutputFormat, "JSON")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "trace", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, config.OutputJSON, cfg.Output.Format)
}

func TestLoad_InvalidYAML(t *testing.T) {
	isolate(t)
	path := writeConfig(t, t.TempDir(), "output: [unclosed\n")

	_, err := config.Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoad_TypeMismatch(t *testing.T) {
	isolate(t)
	path := writeConfig(t, t.TempDir(), "output:\n  chart_width: wide\n")

	_, err := config.Load(path)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestSave_RoundTrip(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := config.New()
	cfg.SetConfigPath(path)
	cfg.Output.ChartWidth = 60
	cfg.Catalog = map[string]config.NanoparticleEntry{
		"Fe3O4": {
			Emissions: map[string]float64{"CO2": 1.5},
			Toxicity:  0.2,
			EnergyUse: []float64{2, 3},
			WaterUse:  []float64{0.01, 0.02},
			CostPerKg: 12,
		},
	}
	require.NoError(t, cfg.Save())

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 60, loaded.Output.ChartWidth)
	require.Contains(t, loaded.Catalog, "Fe3O4")
	assert.Equal(t, cfg.Catalog["Fe3O4"], loaded.Catalog["Fe3O4"])
}

func TestToLoggingConfig(t *testing.T) {
	lc := config.LoggingConfig{Level: "debug", Format: "json"}
	got := lc.ToLoggingConfig()
	assert.Equal(t, "debug", got.Level)
	assert.Equal(t, "json", got.Format)
}

func TestBuildCatalog(t *testing.T) {
	isolate(t)
	path := writeConfig(t, t.TempDir(), `
catalog:
  Fe3O4:
    emissions: {CO2: 1.5, CH4: 0.001}
    toxicity: 0.2
    energy_use: [2.0, 3.0]
    water_use: [0.01, 0.02]
    cost_per_kg: 12
  TiO2:
    emissions: {CO2: 9.0}
    toxicity: 1.0
    energy_use: [1.0, 1.0]
    water_use: [0.0, 0.0]
    cost_per_kg: 1
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	cat, err := cfg.BuildCatalog()
	require.NoError(t, err)
	assert.Equal(t, lca.DefaultCatalog().Len()+1, cat.Len())

	fe, ok := cat.Lookup("Fe3O4")
	require.True(t, ok)
	assert.Equal(t, lca.Bounds{2.0, 3.0}, fe.EnergyUse)
	assert.InDelta(t, 0.001, fe.Emissions[lca.GasCH4], 1e-12)
	assert.InDelta(t, 12.0, fe.CostPerKg, 1e-12)

	ti, ok := cat.Lookup("TiO2")
	require.True(t, ok)
	assert.InDelta(t, 9.0, ti.Emissions[lca.GasCO2], 1e-12, "configured entry overrides built-in")

	builtin, _ := lca.DefaultCatalog().Lookup("TiO2")
	assert.InDelta(t, 7.69e-7, builtin.Emissions[lca.GasCO2], 1e-15, "built-in catalog untouched")
}

func TestBuildCatalog_BadBounds(t *testing.T) {
	cfg := config.New()
	cfg.Catalog = map[string]config.NanoparticleEntry{
		"Bad": {EnergyUse: []float64{1, 2, 3}, WaterUse: []float64{0, 0}},
	}

	_, err := cfg.BuildCatalog()
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidBounds)
	assert.Contains(t, err.Error(), "Bad energy_use")
}
