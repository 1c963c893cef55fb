package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/trsgrid/internal/core/domain"
	"github.com/custodia-labs/trsgrid/internal/logger"
)

var convertCmd = &cobra.Command{
	Use:   "convert [file...]",
	Short: "Convert transcripts to TextGrid",
	Long: `Converts each .trs file to a TextGrid written next to it, or into
--output-dir. Only transcripts with a single episode holding a single
section can be exported.`,
	Args: cobra.ArbitraryArgs,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}
	if err := ensureTranscriptServices(); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger.Section("Converting")
	skipped := 0
	for _, path := range args {
		out, err := transcriptService.Convert(ctx, path)
		if err != nil {
			if errors.Is(err, domain.ErrWrite) || ctx.Err() != nil {
				return fmt.Errorf("convert %s: %w", path, err)
			}
			skipped++
			cmd.PrintErrf("skipping %s: %v\n", path, err)
			continue
		}
		cmd.Printf("%s -> %s\n", path, out)
	}

	if skipped > 0 {
		logger.Info("%d of %d files skipped", skipped, len(args))
	}
	return nil
}
