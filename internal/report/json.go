package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rshade/nanolca/internal/lca"
)

// ComparisonRow pairs the nanofluid and baseline values of one indicator.
type ComparisonRow struct {
	Indicator string  `json:"indicator"`
	Unit      string  `json:"unit"`
	Nanofluid float64 `json:"nanofluid"`
	Baseline  float64 `json:"egs_baseline"`
}

// Document is the machine-readable form of a run.
type Document struct {
	Scenario   lca.Scenario    `json:"scenario"`
	Baseline   lca.EGSBaseline `json:"egs_baseline"`
	Comparison []ComparisonRow `json:"comparison"`
}

// NewDocument assembles the JSON document for a run.
func NewDocument(sc lca.Scenario, baseline lca.EGSBaseline) Document {
	inds := lca.Indicators()
	rows := make([]ComparisonRow, len(inds))
	for i, ind := range inds {
		rows[i] = ComparisonRow{
			Indicator: ind.String(),
			Unit:      ind.Unit(),
			Nanofluid: sc.Results.Value(ind),
			Baseline:  baseline.Results.Value(ind),
		}
	}
	return Document{Scenario: sc, Baseline: baseline, Comparison: rows}
}

// WriteJSON writes doc as indented JSON.
func WriteJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}
	return nil
}
