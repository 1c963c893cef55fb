// Package textgrid writes transcripts as Praat TextGrid files.
//
// Only the long text format is produced. Each turn of the single exported
// section becomes one IntervalTier, named by its 1-based position, and each
// chunk becomes one interval.
package textgrid

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/custodia-labs/trsgrid/internal/core/domain"
	"github.com/custodia-labs/trsgrid/internal/core/ports/driven"
)

// Extension is the conventional TextGrid file extension.
const Extension = ".TextGrid"

// Ensure Renderer implements the interface.
var _ driven.Renderer = (*Renderer)(nil)

// Renderer writes the long TextGrid format.
type Renderer struct{}

// New creates a TextGrid renderer.
func New() *Renderer {
	return &Renderer{}
}

// Extension returns ".TextGrid".
func (r *Renderer) Extension() string {
	return Extension
}

// Render writes t to w. The transcript must hold exactly one episode with
// exactly one section; anything else fails with domain.ErrUnsupportedStructure
// before any output is written.
func (r *Renderer) Render(w io.Writer, t *domain.Transcript) error {
	section, err := exportSection(t)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, `File type = "ooTextFile"`)
	fmt.Fprintln(bw, `Object class = "TextGrid"`)
	fmt.Fprintln(bw)
	fmt.Fprintf(bw, "xmin = %s\n", FormatTime(section.Start))
	fmt.Fprintf(bw, "xmax = %s\n", FormatTime(section.End))
	fmt.Fprintln(bw, "tiers? <exists>")
	fmt.Fprintf(bw, "size = %d\n", section.Len())
	fmt.Fprintln(bw, "item []:")

	for i, turn := range section.Turns {
		fmt.Fprintf(bw, "    item[%d]:\n", i+1)
		fmt.Fprintln(bw, `        class = "IntervalTier"`)
		fmt.Fprintf(bw, "        name = \"%d\"\n", i+1)
		fmt.Fprintf(bw, "        xmin = %s\n", FormatTime(turn.Start))
		fmt.Fprintf(bw, "        xmax = %s\n", FormatTime(turn.End))
		fmt.Fprintf(bw, "        intervals: size = %d\n", turn.Len())

		for j, chunk := range turn.Chunks {
			fmt.Fprintf(bw, "        intervals [%d]:\n", j+1)
			fmt.Fprintf(bw, "            xmin = %s\n", FormatTime(chunk.Start))
			fmt.Fprintf(bw, "            xmax = %s\n", FormatTime(chunk.End))
			fmt.Fprintf(bw, "            text = %s\n", Quote(chunk.Text))
		}
	}

	return bw.Flush()
}

func exportSection(t *domain.Transcript) (*domain.Section, error) {
	if t == nil {
		return nil, domain.ErrInvalidInput
	}
	if t.Len() != 1 {
		return nil, fmt.Errorf("%w: %d episodes, want 1", domain.ErrUnsupportedStructure, t.Len())
	}
	episode := &t.Episodes[0]
	if episode.Len() != 1 {
		return nil, fmt.Errorf("%w: %d sections, want 1", domain.ErrUnsupportedStructure, episode.Len())
	}
	return &episode.Sections[0], nil
}

// FormatTime formats seconds in the shortest exact decimal form, keeping a
// ".0" on whole numbers (0 -> "0.0", 2.30 -> "2.3").
func FormatTime(seconds float64) string {
	s := strconv.FormatFloat(seconds, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Quote wraps text in double quotes, doubling embedded quotes.
func Quote(text string) string {
	return `"` + strings.ReplaceAll(text, `"`, `""`) + `"`
}
