// Package lca implements a simplified life-cycle assessment of water-based
// nanofluids.
//
// It holds the static reference dataset (water properties, the nanoparticle
// catalog, GWP multipliers and the Swiss EGS drilling scenario), the five
// indicator formulas, and the resolver and runner that combine them into a
// single ResultSet per run. Nothing in this package performs I/O.
package lca

import "fmt"

// Gas identifies a greenhouse gas tracked by the emission factors.
type Gas string

const (
	// GasCO2 is carbon dioxide.
	GasCO2 Gas = "CO2"

	// GasCH4 is methane.
	GasCH4 Gas = "CH4"
)

// Emissions maps a gas to its emission factor in kg of gas per kg of material.
type Emissions map[Gas]float64

// Clone returns an independent copy of e.
func (e Emissions) Clone() Emissions {
	if e == nil {
		return nil
	}
	out := make(Emissions, len(e))
	for gas, v := range e {
		out[gas] = v
	}
	return out
}

// Bounds is a lower/upper bound pair as published by the source inventories.
type Bounds [2]float64

// Lower returns the lower bound.
func (b Bounds) Lower() float64 { return b[0] }

// Upper returns the upper bound.
func (b Bounds) Upper() float64 { return b[1] }

// Sum flattens the pair into a single value.
func (b Bounds) Sum() float64 { return b[0] + b[1] }

// BaseFluidProperties describes the carrier fluid of a nanofluid.
type BaseFluidProperties struct {
	// Emissions are kg of gas per kg of fluid.
	Emissions Emissions

	// EnergyUse is the energy demand range in MJ/kg.
	EnergyUse Bounds

	// WaterUse is the water consumption range in m³/kg.
	WaterUse Bounds

	// ToxicityFactors holds the toxicity offset keyed by nanoparticle name.
	ToxicityFactors map[string]float64

	// HeatTransfer is carried for completeness and not used by any formula.
	HeatTransfer float64
}

// NanoparticleRecord holds the LCA parameters of one nanoparticle additive.
type NanoparticleRecord struct {
	Name string `json:"name"`

	// Emissions are kg of gas per kg of nanoparticle.
	Emissions Emissions `json:"emissions"`

	// Toxicity is expressed in CTUh/e equivalents.
	Toxicity float64 `json:"toxicity"`

	// EnergyUse is the production energy range in MJ/kg.
	EnergyUse Bounds `json:"energy_use"`

	// WaterUse is the production water range in m³/kg.
	WaterUse Bounds `json:"water_use"`

	CostPerKg float64 `json:"cost_per_kg"`
}

// Clone returns a deep copy of r.
func (r NanoparticleRecord) Clone() NanoparticleRecord {
	r.Emissions = r.Emissions.Clone()
	return r
}

// GWPTable maps a gas to its global-warming-potential multiplier.
type GWPTable map[Gas]float64

// Indicator identifies one of the reported impact categories.
type Indicator int

const (
	// IndicatorCarbonFootprint is kg CO2-eq per kg of nanofluid.
	IndicatorCarbonFootprint Indicator = iota

	// IndicatorCumulativeEnergyDemand is MJ per kg of nanofluid.
	IndicatorCumulativeEnergyDemand

	// IndicatorToxicity combines human and ecotoxicity potentials.
	IndicatorToxicity

	// IndicatorWaterFootprint is m³ per kg of nanofluid.
	IndicatorWaterFootprint

	// IndicatorCost is currency per kg of nanofluid.
	IndicatorCost
)

// Indicators returns every indicator in report order.
func Indicators() []Indicator {
	return []Indicator{
		IndicatorCarbonFootprint,
		IndicatorCumulativeEnergyDemand,
		IndicatorToxicity,
		IndicatorWaterFootprint,
		IndicatorCost,
	}
}

// String returns the label used in reports and charts.
func (i Indicator) String() string {
	switch i {
	case IndicatorCarbonFootprint:
		return "Carbon Footprint"
	case IndicatorCumulativeEnergyDemand:
		return "Cumulative Energy Demand"
	case IndicatorToxicity:
		return "Toxicity (HTP+ETP)"
	case IndicatorWaterFootprint:
		return "Water Footprint"
	case IndicatorCost:
		return "Cost"
	default:
		return fmt.Sprintf("Indicator(%d)", i)
	}
}

// Unit returns the unit of the nanofluid value for i.
func (i Indicator) Unit() string {
	switch i {
	case IndicatorCarbonFootprint:
		return "kg CO2-eq/kg"
	case IndicatorCumulativeEnergyDemand:
		return "MJ/kg"
	case IndicatorToxicity:
		return "CTUh/e"
	case IndicatorWaterFootprint:
		return "m³/kg"
	case IndicatorCost:
		return "$/kg"
	default:
		return ""
	}
}

// ResultSet holds one value per indicator.
type ResultSet struct {
	CarbonFootprint        float64 `json:"carbon_footprint"`
	CumulativeEnergyDemand float64 `json:"cumulative_energy_demand"`
	Toxicity               float64 `json:"toxicity"`
	WaterFootprint         float64 `json:"water_footprint"`
	Cost                   float64 `json:"cost"`
}

// Value returns the value stored for ind, or 0 for an unknown indicator.
func (r ResultSet) Value(ind Indicator) float64 {
	switch ind {
	case IndicatorCarbonFootprint:
		return r.CarbonFootprint
	case IndicatorCumulativeEnergyDemand:
		return r.CumulativeEnergyDemand
	case IndicatorToxicity:
		return r.Toxicity
	case IndicatorWaterFootprint:
		return r.WaterFootprint
	case IndicatorCost:
		return r.Cost
	default:
		return 0
	}
}

// Values returns the values in the order of Indicators.
func (r ResultSet) Values() []float64 {
	inds := Indicators()
	out := make([]float64, len(inds))
	for i, ind := range inds {
		out[i] = r.Value(ind)
	}
	return out
}

// Map returns the values keyed by indicator label.
func (r ResultSet) Map() map[string]float64 {
	out := make(map[string]float64, len(Indicators()))
	for _, ind := range Indicators() {
		out[ind.String()] = r.Value(ind)
	}
	return out
}

// Source records where a nanoparticle record came from.
type Source int

const (
	// SourceCatalog means the record was found in the catalog.
	SourceCatalog Source = iota

	// SourceManual means the record was entered by hand.
	SourceManual
)

// String returns a human-readable representation of the Source.
func (s Source) String() string {
	switch s {
	case SourceCatalog:
		return "catalog"
	case SourceManual:
		return "manual"
	default:
		return fmt.Sprintf("Source(%d)", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Source) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
