package driving

import (
	"context"

	"github.com/custodia-labs/trsgrid/internal/core/domain"
)

// TranscriptService loads and converts transcript files.
type TranscriptService interface {
	// Load parses a file and runs the post-processing pipeline on it.
	Load(ctx context.Context, path string) (*domain.Transcript, error)

	// Convert loads a file and writes it in the export format.
	// Returns the path of the written file.
	Convert(ctx context.Context, path string) (string, error)

	// OutputPath returns where Convert writes the output for path.
	OutputPath(path string) string
}
