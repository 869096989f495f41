package lca

// Global warming potentials, 100-year horizon.
const (
	GWPCO2 = 1.0
	GWPCH4 = 28.0
)

// BaseFluidCostPerKg is the cost of the water carrier in $/kg.
const BaseFluidCostPerKg = 0.001

// GramsToKg converts grams to kilograms.
const GramsToKg = 0.001

// Time constants for lifetime electricity output.
const (
	SecondsPerHour = 3600
	HoursPerDay    = 24
	DaysPerYear    = 365
)

// Swiss EGS case: 3.5 km depth, 50-year lifetime.
const (
	EGSDepthKm                = 3.5
	EGSPlantLifetimeYears     = 50
	EGSDrillingEnergyTotalKWh = 10986111.11
	EGSElectricityKWh         = 9887500.00
	EGSDieselKWhEquivalent    = 1098611.11
	EGSConversionEfficiency   = 0.15
	EGSGHGMinGPerKWh          = 30.0
	EGSGHGMaxGPerKWh          = 40.0
)
