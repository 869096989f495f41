package lca

import (
	"context"
	"fmt"

	"github.com/rshade/nanolca/internal/logging"
)

// ManualEntry supplies the parameters of a nanoparticle missing from the catalog.
type ManualEntry interface {
	Enter(name string) (NanoparticleRecord, error)
}

// ManualEntryFunc adapts a function to the ManualEntry interface.
type ManualEntryFunc func(name string) (NanoparticleRecord, error)

// Enter calls f(name).
func (f ManualEntryFunc) Enter(name string) (NanoparticleRecord, error) {
	return f(name)
}

// Resolution is a fully populated nanoparticle record plus the mass fraction
// it is dosed at.
type Resolution struct {
	Record       NanoparticleRecord `json:"nanoparticle"`
	MassFraction float64            `json:"mass_fraction"`
	Source       Source             `json:"source"`
}

// Resolver turns a nanoparticle name into a parameter set.
type Resolver struct {
	Catalog *Catalog
	Manual  ManualEntry
}

// NewResolver creates a Resolver backed by catalog, falling back to manual.
func NewResolver(catalog *Catalog, manual ManualEntry) *Resolver {
	return &Resolver{Catalog: catalog, Manual: manual}
}

// Resolve looks name up in the catalog and otherwise asks the manual entry
// source. massFraction is passed through unchecked.
func (r *Resolver) Resolve(ctx context.Context, name string, massFraction float64) (Resolution, error) {
	log := logging.FromContext(ctx).With().
		Str("component", "resolver").
		Str("nanoparticle", name).
		Float64("mass_fraction", massFraction).
		Logger()

	if massFraction < 0 || massFraction > 1 {
		log.Debug().Msg("mass fraction outside [0, 1]")
	}

	if rec, ok := r.Catalog.Lookup(name); ok {
		log.Debug().Msg("nanoparticle found in catalog")
		return Resolution{Record: rec, MassFraction: massFraction, Source: SourceCatalog}, nil
	}

	log.Debug().Msg("nanoparticle not in catalog, using manual entry")
	if r.Manual == nil {
		return Resolution{}, fmt.Errorf("%w: %q", ErrNoManualEntry, name)
	}

	rec, err := r.Manual.Enter(name)
	if err != nil {
		return Resolution{}, fmt.Errorf("%w for %q: %w", ErrManualEntryFailed, name, err)
	}
	rec.Name = name

	return Resolution{Record: rec, MassFraction: massFraction, Source: SourceManual}, nil
}
