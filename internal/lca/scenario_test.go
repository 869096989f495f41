package lca

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_TiO2Example(t *testing.T) {
	r := NewResolver(DefaultCatalog(), nil)
	res, err := r.Resolve(context.Background(), "TiO2", 0.02)
	require.NoError(t, err)
	assert.Equal(t, SourceCatalog, res.Source)

	sc := Run(context.Background(), Water(), res, DefaultGWP())

	assert.InDelta(t, 0.034000769, sc.Results.CarbonFootprint, 1e-12)
	assert.InDelta(t, 3.2, sc.Results.CumulativeEnergyDemand, 1e-12)
	assert.InDelta(t, 1.3974e-7, sc.Results.Toxicity, 1e-15)
	assert.InDelta(t, 0.0235, sc.Results.WaterFootprint, 1e-12)
	assert.InDelta(t, 0.101, sc.Results.Cost, 1e-12)
	assert.Equal(t, "TiO2", sc.Record.Name)
	assert.InDelta(t, 0.02, sc.MassFraction, tol)
}

func TestRun_OutOfRangeMassFraction(t *testing.T) {
	rec, _ := DefaultCatalog().Lookup("CuO")
	sc := Run(context.Background(), Water(), Resolution{Record: rec, MassFraction: -1}, DefaultGWP())

	// Unchecked: the formulas still produce a value.
	assert.InDelta(t, 0.001-8.0, sc.Results.Cost, tol)
}

func TestResolve_UnknownRoutesToManualEntry(t *testing.T) {
	called := 0
	manual := ManualEntryFunc(func(name string) (NanoparticleRecord, error) {
		called++
		assert.Equal(t, "XYZ", name)
		return NanoparticleRecord{
			Emissions: Emissions{GasCO2: 1, GasCH4: 0.1},
			Toxicity:  2,
			EnergyUse: Bounds{1, 2},
			WaterUse:  Bounds{0.1, 0.2},
			CostPerKg: 10,
		}, nil
	})

	res, err := NewResolver(DefaultCatalog(), manual).Resolve(context.Background(), "XYZ", 0.5)
	require.NoError(t, err)
	assert.Equal(t, 1, called)
	assert.Equal(t, SourceManual, res.Source)
	assert.Equal(t, "XYZ", res.Record.Name)

	sc := Run(context.Background(), Water(), res, DefaultGWP())
	assert.InDelta(t, 0.034+1+2.8, sc.Results.CarbonFootprint, 1e-12)
	assert.InDelta(t, 1.3+3, sc.Results.CumulativeEnergyDemand, 1e-12)
	assert.InDelta(t, 1.0, sc.Results.Toxicity, 1e-12, "no base offset for XYZ")
	assert.InDelta(t, 0.023+0.15, sc.Results.WaterFootprint, 1e-12)
	assert.InDelta(t, 5.001, sc.Results.Cost, 1e-12)
}

func TestResolve_CatalogHitSkipsManualEntry(t *testing.T) {
	manual := ManualEntryFunc(func(string) (NanoparticleRecord, error) {
		t.Fatal("manual entry must not be called for catalog names")
		return NanoparticleRecord{}, nil
	})

	res, err := NewResolver(DefaultCatalog(), manual).Resolve(context.Background(), "Ag", 0.1)
	require.NoError(t, err)
	assert.Equal(t, SourceCatalog, res.Source)
}

func TestResolve_Errors(t *testing.T) {
	_, err := NewResolver(DefaultCatalog(), nil).Resolve(context.Background(), "XYZ", 0.1)
	assert.ErrorIs(t, err, ErrNoManualEntry)

	boom := errors.New("bad number")
	failing := ManualEntryFunc(func(string) (NanoparticleRecord, error) {
		return NanoparticleRecord{}, boom
	})
	_, err = NewResolver(DefaultCatalog(), failing).Resolve(context.Background(), "XYZ", 0.1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrManualEntryFailed)
	assert.ErrorIs(t, err, boom)
}

func TestRun_WarnsAboutGasesWithoutGWP(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.WarnLevel)
	ctx := logger.WithContext(context.Background())

	res := Resolution{
		Record: NanoparticleRecord{
			Name:      "Fe",
			Emissions: Emissions{GasCO2: 1, "N2O": 2},
		},
		MassFraction: 0.1,
		Source:       SourceManual,
	}
	sc := Run(ctx, Water(), res, DefaultGWP())

	assert.InDelta(t, 0.034+1, sc.Results.CarbonFootprint, 1e-12)
	assert.Contains(t, buf.String(), `"gases":["N2O"]`)
	assert.Contains(t, buf.String(), "left out of the carbon footprint")
}
