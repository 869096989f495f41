package lca

import (
	"maps"
	"slices"
)

// weightedEmissions sums e[gas]*gwp[gas] over the gases of gwp in a fixed order.
// Gases without a GWP multiplier do not contribute.
func weightedEmissions(e Emissions, gwp GWPTable) float64 {
	total := 0.0
	for _, gas := range slices.Sorted(maps.Keys(gwp)) {
		total += e[gas] * gwp[gas]
	}
	return total
}

// UnweightedGases returns the gases of e, sorted, that have no multiplier in
// gwp and so do not count towards CarbonFootprint.
func UnweightedGases(e Emissions, gwp GWPTable) []Gas {
	var missing []Gas
	for _, gas := range slices.Sorted(maps.Keys(e)) {
		if _, ok := gwp[gas]; !ok {
			missing = append(missing, gas)
		}
	}
	return missing
}

// CarbonFootprint returns kg CO2-eq per kg of nanofluid.
//
// Base and additive contributions are added without weighting by mass
// fraction.
func CarbonFootprint(base, additive Emissions, gwp GWPTable) float64 {
	return weightedEmissions(base, gwp) + weightedEmissions(additive, gwp)
}

// CumulativeEnergyDemand returns MJ per kg of nanofluid. Like
// CarbonFootprint it does not depend on mass fraction.
func CumulativeEnergyDemand(base, additive Bounds) float64 {
	return base.Sum() + additive.Sum()
}

// Toxicity returns CTUh/e for the nanofluid.
func Toxicity(baseOffset, additive, massFraction float64) float64 {
	return baseOffset + additive*massFraction
}

// WaterFootprint returns m³ per kg of nanofluid.
func WaterFootprint(base, additive Bounds, massFraction float64) float64 {
	return base.Sum() + additive.Sum()*massFraction
}

// Cost returns the nanofluid cost per kg.
func Cost(baseCost, additiveCost, massFraction float64) float64 {
	return baseCost + additiveCost*massFraction
}

// BaseToxicityOffset returns the toxicity offset the base fluid carries for
// the named nanoparticle, or 0 when none is listed.
func BaseToxicityOffset(base BaseFluidProperties, name string) float64 {
	return base.ToxicityFactors[name]
}
