package postprocessors

import (
	"slices"

	"github.com/custodia-labs/trsgrid/internal/core/domain"
	"github.com/custodia-labs/trsgrid/internal/core/ports/driven"
	"github.com/custodia-labs/trsgrid/internal/postprocessors/intervals"
	"github.com/custodia-labs/trsgrid/internal/postprocessors/whitespace"
)

// RegisterDefaults registers the built-in processors.
func RegisterDefaults(r *Registry) {
	r.Register(func() driven.PostProcessor { return intervals.New() })
	r.Register(func() driven.PostProcessor { return whitespace.New() })
}

// BuildPipeline creates a pipeline from processor names in order.
// Interval derivation is appended when the names omit it, since every
// export needs chunk end times.
func BuildPipeline(r *Registry, names []string) (*Pipeline, error) {
	if !slices.Contains(names, domain.ProcessorIntervals) {
		names = append(slices.Clone(names), domain.ProcessorIntervals)
	}

	p := NewPipeline()
	for _, name := range names {
		processor, err := r.Build(name)
		if err != nil {
			return nil, err
		}
		p.Add(processor)
	}
	return p, nil
}
