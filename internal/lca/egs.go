package lca

// EGSScenario describes an enhanced geothermal system drilling case.
type EGSScenario struct {
	DepthKm                float64 `json:"depth_km"`
	PlantLifetimeYears     float64 `json:"plant_lifetime_years"`
	DrillingEnergyTotalKWh float64 `json:"drilling_energy_total_kwh"`
	ElectricityKWh         float64 `json:"electricity_kwh"`
	DieselKWhEquivalent    float64 `json:"diesel_kwh_equivalent"`
	ConversionEfficiency   float64 `json:"conversion_efficiency"`

	// GHGEmissionRange is in g CO2-eq per kWh.
	GHGEmissionRange Bounds `json:"ghg_emission_range_g_per_kwh"`
}

// SwissEGS returns the Swiss 3.5 km, 50-year EGS case.
func SwissEGS() EGSScenario {
	return EGSScenario{
		DepthKm:                EGSDepthKm,
		PlantLifetimeYears:     EGSPlantLifetimeYears,
		DrillingEnergyTotalKWh: EGSDrillingEnergyTotalKWh,
		ElectricityKWh:         EGSElectricityKWh,
		DieselKWhEquivalent:    EGSDieselKWhEquivalent,
		ConversionEfficiency:   EGSConversionEfficiency,
		GHGEmissionRange:       Bounds{EGSGHGMinGPerKWh, EGSGHGMaxGPerKWh},
	}
}

// EGSBaseline is the indicator set derived from an EGSScenario.
type EGSBaseline struct {
	Scenario EGSScenario `json:"scenario"`

	// TotalElectricityKWh is the lifetime electricity output.
	TotalElectricityKWh float64 `json:"total_electricity_kwh"`

	// DrillingIntensity is kWh of drilling energy per kWh of electricity.
	DrillingIntensity float64 `json:"drilling_intensity"`

	// GHGAverageG is the midpoint of the emission range in g CO2-eq/kWh.
	GHGAverageG float64 `json:"ghg_average_g_per_kwh"`

	Results ResultSet `json:"results"`
}

// DeriveEGSBaseline computes the baseline indicators for s.
//
// Toxicity, water footprint and cost have no data source for the baseline
// and are fixed at zero.
func DeriveEGSBaseline(s EGSScenario) EGSBaseline {
	total := s.ConversionEfficiency * SecondsPerHour * HoursPerDay * DaysPerYear * s.PlantLifetimeYears
	intensity := s.DrillingEnergyTotalKWh / total
	ghgAvg := s.GHGEmissionRange.Sum() / 2

	return EGSBaseline{
		Scenario:            s,
		TotalElectricityKWh: total,
		DrillingIntensity:   intensity,
		GHGAverageG:         ghgAvg,
		Results: ResultSet{
			CarbonFootprint:        ghgAvg * GramsToKg,
			CumulativeEnergyDemand: intensity,
			Toxicity:               0,
			WaterFootprint:         0,
			Cost:                   0,
		},
	}
}
