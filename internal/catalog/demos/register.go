// Package demos wires the five principle showcases into a catalog
// registry. Each demo builds its types immediately before use, records
// the observable output on the transcript, and lets them go; nothing is
// shared between showcases and nothing survives the run.
package demos

import (
	"soliddojo/internal/catalog"
)

// RegisterAll registers the five principle showcases with the given
// registry, in acronym order.
func RegisterAll(registry *catalog.Registry) error {
	showcases := []*catalog.Showcase{
		SRPShowcase(),
		OCPShowcase(),
		LSPShowcase(),
		ISPShowcase(),
		DIPShowcase(),
	}

	for _, sc := range showcases {
		if err := registry.Register(sc); err != nil {
			return err
		}
	}

	return nil
}

// Builtin returns a fresh registry holding the five showcases.
func Builtin() (*catalog.Registry, error) {
	registry := catalog.NewRegistry()
	if err := RegisterAll(registry); err != nil {
		return nil, err
	}
	return registry, nil
}
