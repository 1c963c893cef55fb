package postprocessors

import (
	"fmt"
	"maps"
	"slices"

	"github.com/custodia-labs/trsgrid/internal/core/domain"
	"github.com/custodia-labs/trsgrid/internal/core/ports/driven"
)

// Constructor returns a new, ready to use processor.
type Constructor func() driven.PostProcessor

// Registry maps processor names, as used in pipeline.processors, to
// constructors.
type Registry struct {
	constructors map[string]Constructor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{constructors: make(map[string]Constructor)}
}

// Register adds a constructor under the name its processor reports,
// replacing any earlier one with that name.
func (r *Registry) Register(c Constructor) {
	r.constructors[c().Name()] = c
}

// Build creates the processor registered under name.
// Unknown names fail with domain.ErrUnsupportedType.
func (r *Registry) Build(name string) (driven.PostProcessor, error) {
	c, ok := r.constructors[name]
	if !ok {
		return nil, fmt.Errorf("%w: processor %q", domain.ErrUnsupportedType, name)
	}
	return c(), nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.constructors[name]
	return ok
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.constructors))
}
