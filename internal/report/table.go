package report

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/nanolca/internal/lca"
)

// Catalog table layout.
const (
	nameColumnWidth  = 10
	valueColumnWidth = 9
	rangeColumnWidth = 15
	cellPadding      = 2
	headerLines      = 3
)

func formatRange(b lca.Bounds) string {
	return fmt.Sprintf("%s-%s", FormatCompact(b.Lower()), FormatCompact(b.Upper()))
}

// RenderCatalogTable renders the nanoparticle catalog, including the base
// fluid toxicity offset each entry picks up.
func RenderCatalogTable(records []lca.NanoparticleRecord, base lca.BaseFluidProperties) string {
	columns := []table.Column{
		{Title: "Name", Width: nameColumnWidth},
		{Title: "CO2", Width: valueColumnWidth},
		{Title: "CH4", Width: valueColumnWidth},
		{Title: "Toxicity", Width: valueColumnWidth},
		{Title: "Offset", Width: valueColumnWidth},
		{Title: "Energy MJ/kg", Width: rangeColumnWidth},
		{Title: "Water m³/kg", Width: rangeColumnWidth},
		{Title: "$/kg", Width: valueColumnWidth},
	}

	rows := make([]table.Row, len(records))
	for i, r := range records {
		rows[i] = table.Row{
			r.Name,
			FormatCompact(r.Emissions[lca.GasCO2]),
			FormatCompact(r.Emissions[lca.GasCH4]),
			FormatCompact(r.Toxicity),
			FormatCompact(lca.BaseToxicityOffset(base, r.Name)),
			formatRange(r.EnergyUse),
			formatRange(r.WaterUse),
			FormatCompact(r.CostPerKg),
		}
	}

	width := 0
	for _, c := range columns {
		width += c.Width + cellPadding
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithWidth(width),
		table.WithHeight(len(rows)+headerLines),
	)

	s := table.DefaultStyles()
	s.Header = TableHeaderStyle.Padding(0, 1)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t.View() + "\n"
}
