// Package whitespace provides a processor that flattens chunk text.
//
// Transcriber keeps line breaks inside an utterance; TextGrid labels are
// easier to read on one line.
package whitespace

import (
	"context"
	"strings"

	"github.com/custodia-labs/trsgrid/internal/core/domain"
	"github.com/custodia-labs/trsgrid/internal/core/ports/driven"
)

// Ensure Processor implements the interface.
var _ driven.PostProcessor = (*Processor)(nil)

// Processor replaces every whitespace run in chunk text with one space.
type Processor struct{}

// New creates a whitespace processor.
func New() *Processor {
	return &Processor{}
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return domain.ProcessorCollapseWhitespace
}

// Process collapses whitespace in every chunk.
func (p *Processor) Process(_ context.Context, t *domain.Transcript) error {
	t.Walk(func(_ *domain.Section, turn *domain.Turn) {
		for i := range turn.Chunks {
			turn.Chunks[i].Text = Collapse(turn.Chunks[i].Text)
		}
	})
	return nil
}

// Collapse trims s and joins its fields with single spaces.
func Collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
