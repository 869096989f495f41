package lca

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveEGSBaseline_Swiss(t *testing.T) {
	b := DeriveEGSBaseline(SwissEGS())

	assert.InDelta(t, 236_520_000.0, b.TotalElectricityKWh, 1e-3)
	assert.InDelta(t, 10986111.11/236_520_000.0, b.DrillingIntensity, 1e-12)
	assert.InDelta(t, 0.04645, b.DrillingIntensity, 1e-5)
	assert.InDelta(t, 35.0, b.GHGAverageG, tol)

	assert.InDelta(t, 0.035, b.Results.CarbonFootprint, tol)
	assert.InDelta(t, b.DrillingIntensity, b.Results.CumulativeEnergyDemand, tol)
	assert.Zero(t, b.Results.Toxicity)
	assert.Zero(t, b.Results.WaterFootprint)
	assert.Zero(t, b.Results.Cost)
}

func TestDeriveEGSBaseline_Custom(t *testing.T) {
	s := SwissEGS()
	s.PlantLifetimeYears = 25
	s.GHGEmissionRange = Bounds{10, 20}

	b := DeriveEGSBaseline(s)
	assert.InDelta(t, 118_260_000.0, b.TotalElectricityKWh, 1e-3)
	assert.InDelta(t, 0.015, b.Results.CarbonFootprint, tol)
	assert.Equal(t, s, b.Scenario)
}

func TestSwissEGS(t *testing.T) {
	s := SwissEGS()
	assert.InDelta(t, 3.5, s.DepthKm, tol)
	assert.InDelta(t, 9887500.00, s.ElectricityKWh, tol)
	assert.InDelta(t, 1098611.11, s.DieselKWhEquivalent, tol)
	assert.Equal(t, Bounds{30, 40}, s.GHGEmissionRange)
}
