// Package intervals provides the chunk end-time derivation processor.
package intervals

import (
	"context"

	"github.com/custodia-labs/trsgrid/internal/core/domain"
	"github.com/custodia-labs/trsgrid/internal/core/ports/driven"
)

// Ensure Processor implements the interface.
var _ driven.PostProcessor = (*Processor)(nil)

// Processor derives chunk end times with Transcript.DeriveIntervals.
type Processor struct{}

// New creates an interval processor.
func New() *Processor {
	return &Processor{}
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return domain.ProcessorIntervals
}

// Process derives every chunk's end time.
func (p *Processor) Process(_ context.Context, t *domain.Transcript) error {
	t.DeriveIntervals()
	return nil
}
