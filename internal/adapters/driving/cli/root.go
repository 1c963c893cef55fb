// Package cli implements the trsgrid command line interface.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/trsgrid/internal/adapters/driven/config/file"
	"github.com/custodia-labs/trsgrid/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/trsgrid/internal/core/ports/driven"
	"github.com/custodia-labs/trsgrid/internal/core/ports/driving"
	"github.com/custodia-labs/trsgrid/internal/core/services"
	"github.com/custodia-labs/trsgrid/internal/logger"
	"github.com/custodia-labs/trsgrid/internal/postprocessors"
	"github.com/custodia-labs/trsgrid/internal/textgrid"
	"github.com/custodia-labs/trsgrid/internal/trs"
)

// version is set at build time via -ldflags.
var version = "dev"

// Persistent flags.
var (
	verbose   bool
	configDir string
	encoding  string
	outputDir string
)

// Services used by the commands. They are built on first use from the
// config file and flags; tests replace them with mocks.
var (
	transcriptService driving.TranscriptService
	transcriptReader  driven.TranscriptReader
	settingsService   driving.SettingsService
)

var rootCmd = &cobra.Command{
	Use:   "trsgrid [file...]",
	Short: "Convert Transcriber transcripts to Praat TextGrid",
	Long: `trsgrid reads Transcriber (.trs) files and writes one Praat TextGrid
per file, with one interval tier per speaker turn.

Files that cannot be read or parsed are reported and skipped. A failure
to write an output file stops the run.`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	RunE: runConvert,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "show debug output on stderr")
	flags.StringVar(&configDir, "config", "", "config directory (default ~/.trsgrid)")
	flags.StringVar(&encoding, "encoding", "", "input character set, e.g. UTF-8 (default from config)")
	flags.StringVar(&outputDir, "output-dir", "", "directory for TextGrid files (default next to input)")
}

// Execute runs the root command until it finishes or the process is
// interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

// ensureSettings opens the config store. An unusable config directory
// falls back to in-memory defaults.
func ensureSettings() {
	if settingsService != nil {
		return
	}

	var store driven.ConfigStore
	fileStore, err := file.NewConfigStore(configDir)
	if err != nil {
		logger.Warn("config unavailable, using defaults: %v", err)
		store = memory.NewConfigStore(nil)
	} else {
		store = fileStore
	}
	settingsService = services.NewSettingsService(store)
}

// ensureTranscriptServices wires the reader, pipeline and renderer from
// settings, with flags taking precedence.
func ensureTranscriptServices() error {
	if transcriptService != nil && transcriptReader != nil {
		return nil
	}
	ensureSettings()

	settings := settingsService.Get()
	if encoding != "" {
		settings.Input.Encoding = encoding
	}
	if outputDir != "" {
		settings.Output.Dir = outputDir
	}

	reader, err := trs.NewReader(trs.WithEncoding(settings.Input.Encoding))
	if err != nil {
		return err
	}

	registry := postprocessors.NewRegistry()
	postprocessors.RegisterDefaults(registry)
	pipeline, err := postprocessors.BuildPipeline(registry, settings.Pipeline.Processors)
	if err != nil {
		return err
	}
	logger.Debug("encoding %s, processors %v", reader.Encoding(), pipeline.Names())

	transcriptReader = reader
	transcriptService = services.NewTranscriptService(reader, pipeline, textgrid.New(), settings.Output)
	return nil
}
