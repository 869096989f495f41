// Package report renders nanolca results for the console: the EGS baseline
// summary, the nanofluid indicator report, terminal bar charts, the catalog
// table and a JSON document.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/rshade/nanolca/internal/lca"
)

// BaselineSummary returns the text printed at startup for the EGS baseline.
func BaselineSummary(b lca.EGSBaseline) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(HeaderStyle.Render(fmt.Sprintf(
		"--- EGS System LCA (Swiss Case: %g km Depth, %g-Year Lifetime) ---",
		b.Scenario.DepthKm, b.Scenario.PlantLifetimeYears)))
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "Total Drilling Energy Required: %s kWh\n", FormatGrouped(b.Scenario.DrillingEnergyTotalKWh))
	fmt.Fprintf(&sb, "Total Estimated Electricity Output: %s kWh\n", FormatSci(b.TotalElectricityKWh, 2))
	fmt.Fprintf(&sb, "Drilling Energy Intensity: %.5f kWh per kWh_el\n", b.DrillingIntensity)
	fmt.Fprintf(&sb, "Estimated GHG Emissions: %.2f g CO2-eq/kWh\n", b.GHGAverageG)

	return sb.String()
}

// ScenarioReport returns the five-line indicator report for sc.
func ScenarioReport(sc lca.Scenario) string {
	r := sc.Results
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(HeaderStyle.Render(fmt.Sprintf("--- LCA Report for Nanofluid with %s ---", sc.Record.Name)))
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "Carbon Footprint of the Nanofluid: %.2e kg CO2-eq/kg\n", r.CarbonFootprint)
	fmt.Fprintf(&sb, "Cumulative Energy Demand: %.2f MJ/kg\n", r.CumulativeEnergyDemand)
	fmt.Fprintf(&sb, "Toxicity (HTP+ETP): %.2e CTUh/e\n", r.Toxicity)
	fmt.Fprintf(&sb, "Water Footprint: %.4f m³/kg\n", r.WaterFootprint)
	fmt.Fprintf(&sb, "Cost of the Nanofluid: $%.4f per kg\n", r.Cost)

	return sb.String()
}

// WriteBaselineSummary writes BaselineSummary(b) to w.
func WriteBaselineSummary(w io.Writer, b lca.EGSBaseline) error {
	_, err := io.WriteString(w, BaselineSummary(b))
	return err
}

// WriteScenarioReport writes ScenarioReport(sc) to w.
func WriteScenarioReport(w io.Writer, sc lca.Scenario) error {
	_, err := io.WriteString(w, ScenarioReport(sc))
	return err
}
