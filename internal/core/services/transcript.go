package services

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/trsgrid/internal/core/domain"
	"github.com/custodia-labs/trsgrid/internal/core/ports/driven"
	"github.com/custodia-labs/trsgrid/internal/core/ports/driving"
	"github.com/custodia-labs/trsgrid/internal/logger"
)

// Ensure TranscriptService implements the interface.
var _ driving.TranscriptService = (*TranscriptService)(nil)

// TranscriptService reads, post-processes and exports transcripts.
type TranscriptService struct {
	reader   driven.TranscriptReader
	pipeline driven.PostProcessorPipeline
	renderer driven.Renderer
	output   domain.OutputSettings
}

// NewTranscriptService creates a new transcript service.
// An empty output extension falls back to the renderer's extension.
func NewTranscriptService(
	reader driven.TranscriptReader,
	pipeline driven.PostProcessorPipeline,
	renderer driven.Renderer,
	output domain.OutputSettings,
) *TranscriptService {
	if output.Extension == "" && renderer != nil {
		output.Extension = renderer.Extension()
	}
	return &TranscriptService{
		reader:   reader,
		pipeline: pipeline,
		renderer: renderer,
		output:   output,
	}
}

// Load parses path and runs the post-processing pipeline on the result.
func (s *TranscriptService) Load(ctx context.Context, path string) (*domain.Transcript, error) {
	if s.reader == nil {
		return nil, fmt.Errorf("transcript reader not configured")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t, err := s.reader.Read(path)
	if err != nil {
		return nil, err
	}

	if s.pipeline != nil {
		if err := s.pipeline.Process(ctx, t); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Convert loads path and writes it next to the input, or into the output
// directory. The output is rendered in memory first, so a transcript that
// cannot be exported never leaves a partial file behind.
func (s *TranscriptService) Convert(ctx context.Context, path string) (string, error) {
	if s.renderer == nil {
		return "", fmt.Errorf("renderer not configured")
	}

	out := s.OutputPath(path)
	if samePath(out, path) {
		return "", fmt.Errorf("%w: output %s would overwrite the input", domain.ErrWrite, out)
	}

	t, err := s.Load(ctx, path)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := s.renderer.Render(&buf, t); err != nil {
		return "", err
	}

	if err := writeOutput(out, buf.Bytes()); err != nil {
		return "", err
	}

	logger.Debug("wrote %s (%d bytes)", out, buf.Len())
	return out, nil
}

// OutputPath returns the export path for an input path.
func (s *TranscriptService) OutputPath(path string) string {
	base := strings.TrimSuffix(path, filepath.Ext(path)) + s.output.Extension
	if s.output.Dir == "" {
		return base
	}
	return filepath.Join(s.output.Dir, filepath.Base(base))
}

// samePath reports whether a and b name the same file, ignoring case since
// common desktop filesystems do.
func samePath(a, b string) bool {
	if absA, err := filepath.Abs(a); err == nil {
		a = absA
	}
	if absB, err := filepath.Abs(b); err == nil {
		b = absB
	}
	return strings.EqualFold(filepath.Clean(a), filepath.Clean(b))
}

// writeOutput writes data to path, wrapping every failure in domain.ErrWrite.
func writeOutput(path string, data []byte) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrWrite, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrWrite, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", domain.ErrWrite, cerr)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrWrite, err)
	}
	return nil
}
