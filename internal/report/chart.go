package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/nanolca/internal/lca"
)

const (
	barRune     = "█"
	tickRune    = "▏"
	minBarWidth = 10
)

// Chart titles and series names.
const (
	NanofluidSeries = "Nanofluid"
	BaselineSeries  = "EGS Baseline (Swiss)"
	ComparisonTitle = "LCA Comparison: Nanofluid vs Swiss EGS (3.5 km, 50 years)"
)

// Series is one set of bars in a chart.
type Series struct {
	Name   string
	Values []float64
	Style  lipgloss.Style
}

// barLength scales |v| against maxAbs into at most width cells.
// Non-zero values always get at least a tick so they remain visible.
func barLength(v, maxAbs float64, width int) int {
	if v == 0 || math.IsNaN(v) {
		return 0
	}
	if math.IsInf(v, 0) {
		return width
	}
	if maxAbs == 0 {
		return 0
	}
	n := int(math.Round(math.Abs(v) / maxAbs * float64(width)))
	return min(n, width)
}

func renderBar(v, maxAbs float64, width int, style lipgloss.Style) string {
	n := barLength(v, maxAbs, width)
	bar := strings.Repeat(barRune, n)
	if n == 0 && v != 0 && !math.IsNaN(v) {
		bar = tickRune
		n = 1
	}
	return style.Render(bar) + strings.Repeat(" ", width-n)
}

func maxAbs(series []Series) float64 {
	m := 0.0
	for _, s := range series {
		for _, v := range s.Values {
			if !math.IsNaN(v) && !math.IsInf(v, 0) {
				m = max(m, math.Abs(v))
			}
		}
	}
	return m
}

func labelWidth(labels []string) int {
	w := 0
	for _, l := range labels {
		w = max(w, lipgloss.Width(l))
	}
	return w
}

// RenderBarChart renders one horizontal bar per label. Bars are scaled
// linearly against the largest absolute value.
func RenderBarChart(title, axis string, labels []string, values []float64, width int) string {
	return RenderGroupedChart(title, axis, labels, []Series{{Values: values, Style: SingleBarStyle}}, width)
}

// RenderGroupedChart renders one group of bars per label, one bar per series.
// Series with a Name are listed in a legend.
func RenderGroupedChart(title, axis string, labels []string, series []Series, width int) string {
	width = max(width, minBarWidth)
	scale := maxAbs(series)
	lw := labelWidth(labels)

	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render(title))
	sb.WriteString("\n")
	if axis != "" {
		sb.WriteString(SubtleStyle.Render(axis))
		sb.WriteString("\n")
	}

	for i, label := range labels {
		for j, s := range series {
			name := ""
			if j == 0 {
				name = label
			}
			v := 0.0
			if i < len(s.Values) {
				v = s.Values[i]
			}
			fmt.Fprintf(&sb, "%s │%s %s\n",
				LabelStyle.Render(fmt.Sprintf("%-*s", lw, name)),
				renderBar(v, scale, width, s.Style),
				ValueStyle.Render(FormatCompact(v)))
		}
	}

	if legend := renderLegend(series); legend != "" {
		sb.WriteString(legend)
		sb.WriteString("\n")
	}
	return sb.String()
}

func renderLegend(series []Series) string {
	var parts []string
	for _, s := range series {
		if s.Name == "" {
			continue
		}
		parts = append(parts, s.Style.Render(barRune)+" "+s.Name)
	}
	return strings.Join(parts, "   ")
}

// IndicatorLabels returns the chart labels for every indicator.
func IndicatorLabels() []string {
	inds := lca.Indicators()
	out := make([]string, len(inds))
	for i, ind := range inds {
		out[i] = ind.String()
	}
	return out
}

// ScenarioChart renders the standalone chart of the nanofluid indicators.
func ScenarioChart(sc lca.Scenario, width int) string {
	return RenderBarChart(
		"LCA of Nanofluid with "+sc.Record.Name,
		"Values",
		IndicatorLabels(),
		sc.Results.Values(),
		width,
	)
}

// ComparisonChart renders the nanofluid indicators next to the EGS baseline.
func ComparisonChart(sc lca.Scenario, baseline lca.EGSBaseline, width int) string {
	return RenderGroupedChart(
		ComparisonTitle,
		"Impact Value",
		IndicatorLabels(),
		[]Series{
			{Name: NanofluidSeries, Values: sc.Results.Values(), Style: NanofluidBarStyle},
			{Name: BaselineSeries, Values: baseline.Results.Values(), Style: BaselineBarStyle},
		},
		width,
	)
}
