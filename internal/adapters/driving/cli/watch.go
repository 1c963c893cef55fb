package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/trsgrid/internal/core/domain"
	"github.com/custodia-labs/trsgrid/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Convert transcripts whenever they change",
	Long: `Watches a directory and converts each .trs file when it is created or
saved. Runs until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if err := ensureTranscriptServices(); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	w := watcher.New(args[0], transcriptService)
	defer w.Close()

	results, err := w.Watch(ctx)
	if err != nil {
		return err
	}
	cmd.Printf("Watching %s (Ctrl+C to stop)\n", w.Dir())

	for r := range results {
		switch {
		case r.Err == nil:
			cmd.Printf("%s -> %s\n", r.Path, r.Output)
		case errors.Is(r.Err, domain.ErrWrite):
			return r.Err
		default:
			cmd.PrintErrf("skipping %s: %v\n", r.Path, r.Err)
		}
	}
	return nil
}
