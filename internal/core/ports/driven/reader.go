package driven

import "github.com/custodia-labs/trsgrid/internal/core/domain"

// TranscriptReader parses a transcript file.
type TranscriptReader interface {
	// Read parses the file at path into a new transcript.
	// Chunk end times are left unset.
	Read(path string) (*domain.Transcript, error)

	// Encoding returns the canonical name of the input character set.
	Encoding() string
}
