package driven

import (
	"context"

	"github.com/custodia-labs/trsgrid/internal/core/domain"
)

// PostProcessor transforms a parsed transcript in place.
// PostProcessors are chained in a pipeline (e.g., interval derivation, text cleanup).
type PostProcessor interface {
	// Name returns the processor name for logging and configuration.
	Name() string

	// Process modifies the transcript.
	Process(ctx context.Context, t *domain.Transcript) error
}

// PostProcessorPipeline chains multiple PostProcessors.
type PostProcessorPipeline interface {
	// Process runs the transcript through all processors in order.
	Process(ctx context.Context, t *domain.Transcript) error
}
