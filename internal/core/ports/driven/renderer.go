package driven

import (
	"io"

	"github.com/custodia-labs/trsgrid/internal/core/domain"
)

// Renderer writes a transcript in an export format.
type Renderer interface {
	// Render writes t to w. The transcript must have derived intervals.
	Render(w io.Writer, t *domain.Transcript) error

	// Extension returns the default file extension, including the dot.
	Extension() string
}
