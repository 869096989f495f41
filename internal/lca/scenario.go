package lca

import (
	"context"

	"github.com/rshade/nanolca/internal/logging"
)

// Scenario is the outcome of one nanofluid assessment.
type Scenario struct {
	Resolution

	Results ResultSet `json:"results"`
}

// Run evaluates the five indicator formulas for res against base.
func Run(ctx context.Context, base BaseFluidProperties, res Resolution, gwp GWPTable) Scenario {
	rec := res.Record
	mf := res.MassFraction

	results := ResultSet{
		CarbonFootprint:        CarbonFootprint(base.Emissions, rec.Emissions, gwp),
		CumulativeEnergyDemand: CumulativeEnergyDemand(base.EnergyUse, rec.EnergyUse),
		Toxicity:               Toxicity(BaseToxicityOffset(base, rec.Name), rec.Toxicity, mf),
		WaterFootprint:         WaterFootprint(base.WaterUse, rec.WaterUse, mf),
		Cost:                   Cost(BaseFluidCostPerKg, rec.CostPerKg, mf),
	}

	log := logging.FromContext(ctx)
	if missing := UnweightedGases(rec.Emissions, gwp); len(missing) > 0 {
		log.Warn().
			Str("component", "scenario").
			Str("nanoparticle", rec.Name).
			Strs("gases", gasNames(missing)).
			Msg("emissions without a GWP factor are left out of the carbon footprint")
	}

	log.Debug().
		Str("component", "scenario").
		Str("nanoparticle", rec.Name).
		Stringer("source", res.Source).
		Float64("mass_fraction", mf).
		Float64("carbon_footprint", results.CarbonFootprint).
		Float64("cumulative_energy_demand", results.CumulativeEnergyDemand).
		Float64("toxicity", results.Toxicity).
		Float64("water_footprint", results.WaterFootprint).
		Float64("cost", results.Cost).
		Msg("scenario evaluated")

	return Scenario{Resolution: res, Results: results}
}

func gasNames(gases []Gas) []string {
	names := make([]string, len(gases))
	for i, g := range gases {
		names[i] = string(g)
	}
	return names
}
