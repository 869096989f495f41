package lca

// DefaultGWP returns the CO2 and CH4 multipliers.
func DefaultGWP() GWPTable {
	return GWPTable{
		GasCO2: GWPCO2,
		GasCH4: GWPCH4,
	}
}

// Water returns the properties of the water base fluid.
// Every call returns a fresh value so callers cannot alter the reference data.
func Water() BaseFluidProperties {
	return BaseFluidProperties{
		Emissions: Emissions{
			GasCO2: 0.02,
			GasCH4: 0.0005,
		},
		EnergyUse: Bounds{0.5, 0.8},
		WaterUse:  Bounds{0.008, 0.015},
		ToxicityFactors: map[string]float64{
			"Ag":       3000,
			"ZnO":      1500,
			"TiO2":     1.37e-7,
			"SiO2":     0,
			"CuO":      0,
			"Al2O3":    0,
			"TiO2-SiC": 1e-7,
		},
		HeatTransfer: 1000,
	}
}

// builtinNanoparticles is the LCA-based nanoparticle inventory, in listing order.
func builtinNanoparticles() []NanoparticleRecord {
	return []NanoparticleRecord{
		{
			Name:      "Ag",
			Emissions: Emissions{GasCO2: 0.3, GasCH4: 0.01},
			Toxicity:  5000,
			EnergyUse: Bounds{1.5, 1.8},
			WaterUse:  Bounds{0.01, 0.02},
			CostPerKg: 50,
		},
		{
			Name:      "ZnO",
			Emissions: Emissions{GasCO2: 0.1, GasCH4: 0.002},
			Toxicity:  1500,
			EnergyUse: Bounds{1.2, 1.5},
			WaterUse:  Bounds{0.005, 0.01},
			CostPerKg: 20,
		},
		{
			Name:      "TiO2",
			Emissions: Emissions{GasCO2: 7.69e-7, GasCH4: 0.0},
			Toxicity:  1.37e-7,
			EnergyUse: Bounds{0.7, 1.2},
			WaterUse:  Bounds{0.01, 0.015},
			CostPerKg: 5.0,
		},
		{
			Name:      "SiO2",
			Emissions: Emissions{GasCO2: 7.26, GasCH4: 0.0},
			Toxicity:  0.0,
			EnergyUse: Bounds{5.0, 6.0},
			WaterUse:  Bounds{0.02, 0.025},
			CostPerKg: 1.0,
		},
		{
			Name:      "CuO",
			Emissions: Emissions{GasCO2: 1.2, GasCH4: 0.0},
			Toxicity:  0.8,
			EnergyUse: Bounds{3.0, 4.0},
			WaterUse:  Bounds{0.015, 0.02},
			CostPerKg: 8.0,
		},
		{
			Name:      "Al2O3",
			Emissions: Emissions{GasCO2: 2.5, GasCH4: 0.001},
			Toxicity:  0.5,
			EnergyUse: Bounds{4.0, 4.5},
			WaterUse:  Bounds{0.01, 0.02},
			CostPerKg: 4.0,
		},
		// Hybrid nanofluid.
		{
			Name:      "TiO2-SiC",
			Emissions: Emissions{GasCO2: 1.0, GasCH4: 0.0},
			Toxicity:  1e-7,
			EnergyUse: Bounds{1.0, 1.5},
			WaterUse:  Bounds{0.01, 0.015},
			CostPerKg: 6.5,
		},
	}
}
