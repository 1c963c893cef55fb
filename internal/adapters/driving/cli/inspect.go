package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/trsgrid/internal/adapters/driving/styles"
	"github.com/custodia-labs/trsgrid/internal/core/domain"
	"github.com/custodia-labs/trsgrid/internal/textgrid"
)

// maxTextRunes is how much chunk text inspect shows per line.
const maxTextRunes = 50

var (
	inspectJSON bool
	inspectRaw  bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file...>",
	Short: "Show the parsed structure of transcripts",
	Long: `Prints every section, turn and chunk of each transcript with its
times. Chunk text is cut to 50 characters.

Use --raw to see chunks as parsed, before end times are derived.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "output the tree as JSON")
	inspectCmd.Flags().BoolVar(&inspectRaw, "raw", false, "skip post-processing")
	rootCmd.AddCommand(inspectCmd)
}

func newInspectStyles(colour bool) *styles.Styles {
	if !colour {
		return styles.PlainStyles()
	}
	return styles.DefaultStyles()
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func runInspect(cmd *cobra.Command, args []string) error {
	if err := ensureTranscriptServices(); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	out := cmd.OutOrStdout()
	st := newInspectStyles(isTerminal(out))

	var loaded []*domain.Transcript
	for _, path := range args {
		t, err := loadForInspect(ctx, path)
		if err != nil {
			if ctx.Err() != nil {
				return err
			}
			cmd.PrintErrf("skipping %s: %v\n", path, err)
			continue
		}
		if inspectJSON {
			loaded = append(loaded, t)
			continue
		}
		printTree(out, t, st)
	}

	if inspectJSON {
		if loaded == nil {
			loaded = []*domain.Transcript{}
		}
		data, err := json.MarshalIndent(loaded, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
	}
	return nil
}

func loadForInspect(ctx context.Context, path string) (*domain.Transcript, error) {
	if inspectRaw {
		return transcriptReader.Read(path)
	}
	return transcriptService.Load(ctx, path)
}

func printTree(w io.Writer, t *domain.Transcript, s *styles.Styles) {
	st := t.Stats()
	fmt.Fprintf(w, "%s (%s): %d episodes, %d sections, %d turns, %d chunks\n",
		s.File.Render(t.Path), t.Encoding, st.Episodes, st.Sections, st.Turns, st.Chunks)

	for _, episode := range t.Episodes {
		for _, section := range episode.Sections {
			fmt.Fprintf(w, "%s %s\n",
				s.Section.Render("section type="+section.Category),
				s.Time.Render(span(section.Start, section.End)))
			for _, turn := range section.Turns {
				fmt.Fprintf(w, "  %s %s\n", s.Turn.Render("turn"), s.Time.Render(span(turn.Start, turn.End)))
				for _, chunk := range turn.Chunks {
					end := "?"
					if chunk.HasEnd() {
						end = textgrid.FormatTime(chunk.End)
					}
					fmt.Fprintf(w, "    %s = %s\n",
						s.Time.Render("@ "+textgrid.FormatTime(chunk.Start)+" --> "+end),
						s.Text.Render(textgrid.Quote(truncate(chunk.Text, maxTextRunes))))
				}
			}
		}
	}
}

func span(start, end float64) string {
	return "@ " + textgrid.FormatTime(start) + " --> " + textgrid.FormatTime(end)
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
