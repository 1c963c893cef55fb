// Package postprocessors provides transcript processing implementations.
package postprocessors

import (
	"context"
	"fmt"

	"github.com/custodia-labs/trsgrid/internal/core/domain"
	"github.com/custodia-labs/trsgrid/internal/core/ports/driven"
	"github.com/custodia-labs/trsgrid/internal/logger"
)

// Ensure Pipeline implements the interface.
var _ driven.PostProcessorPipeline = (*Pipeline)(nil)

// Pipeline chains multiple PostProcessors and runs them in order.
// It implements the PostProcessorPipeline interface.
type Pipeline struct {
	processors []driven.PostProcessor
}

// NewPipeline creates a new processing pipeline with the given processors.
// Processors are executed in the order provided.
func NewPipeline(processors ...driven.PostProcessor) *Pipeline {
	return &Pipeline{
		processors: processors,
	}
}

// Process runs the transcript through all processors in order.
// The context is checked before each processor.
func (p *Pipeline) Process(ctx context.Context, t *domain.Transcript) error {
	if t == nil {
		return fmt.Errorf("transcript is nil")
	}

	for _, processor := range p.processors {
		if err := ctx.Err(); err != nil {
			return err
		}
		logger.Debug("post-processor %s", processor.Name())
		if err := processor.Process(ctx, t); err != nil {
			return fmt.Errorf("processor %s: %w", processor.Name(), err)
		}
	}

	return nil
}

// Add appends a processor to the pipeline.
func (p *Pipeline) Add(processor driven.PostProcessor) {
	p.processors = append(p.processors, processor)
}

// Len returns the number of processors in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.processors)
}

// Names returns processor names in execution order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.processors))
	for i, processor := range p.processors {
		names[i] = processor.Name()
	}
	return names
}
