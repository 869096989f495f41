package config

import (
	"fmt"
	"maps"
	"slices"

	"github.com/rshade/nanolca/internal/lca"
)

// NanoparticleEntry is a user-supplied catalog entry.
type NanoparticleEntry struct {
	Emissions map[string]float64 `yaml:"emissions"`
	Toxicity  float64            `yaml:"toxicity"`
	EnergyUse []float64          `yaml:"energy_use,flow"`
	WaterUse  []float64          `yaml:"water_use,flow"`
	CostPerKg float64            `yaml:"cost_per_kg"`
}

// Record converts e into an lca.NanoparticleRecord named name.
func (e NanoparticleEntry) Record(name string) (lca.NanoparticleRecord, error) {
	energy, err := toBounds(e.EnergyUse)
	if err != nil {
		return lca.NanoparticleRecord{}, fmt.Errorf("%s energy_use: %w", name, err)
	}
	water, err := toBounds(e.WaterUse)
	if err != nil {
		return lca.NanoparticleRecord{}, fmt.Errorf("%s water_use: %w", name, err)
	}

	emissions := make(lca.Emissions, len(e.Emissions))
	for gas, v := range e.Emissions {
		emissions[lca.Gas(gas)] = v
	}

	return lca.NanoparticleRecord{
		Name:      name,
		Emissions: emissions,
		Toxicity:  e.Toxicity,
		EnergyUse: energy,
		WaterUse:  water,
		CostPerKg: e.CostPerKg,
	}, nil
}

func toBounds(v []float64) (lca.Bounds, error) {
	if len(v) != len(lca.Bounds{}) {
		return lca.Bounds{}, fmt.Errorf("%w, got %d", ErrInvalidBounds, len(v))
	}
	return lca.Bounds{v[0], v[1]}, nil
}

// CatalogRecords returns the configured entries sorted by name.
func (c *Config) CatalogRecords() ([]lca.NanoparticleRecord, error) {
	records := make([]lca.NanoparticleRecord, 0, len(c.Catalog))
	for _, name := range slices.Sorted(maps.Keys(c.Catalog)) {
		rec, err := c.Catalog[name].Record(name)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// BuildCatalog returns the built-in catalog extended with the configured entries.
func (c *Config) BuildCatalog() (*lca.Catalog, error) {
	records, err := c.CatalogRecords()
	if err != nil {
		return nil, err
	}
	return lca.DefaultCatalog().With(records...), nil
}
