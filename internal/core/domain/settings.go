package domain

import (
	"fmt"
	"strings"
)

// TranscriptExtension is the extension of Transcriber input files.
const TranscriptExtension = ".trs"

// Default settings values.
const (
	// DefaultEncoding is the character set Transcriber historically writes.
	DefaultEncoding = "ISO-8859-1"

	// DefaultOutputExtension is appended to the input base name.
	DefaultOutputExtension = ".TextGrid"

	// ProcessorIntervals is the name of the interval derivation processor.
	ProcessorIntervals = "intervals"

	// ProcessorCollapseWhitespace is the name of the whitespace folding processor.
	ProcessorCollapseWhitespace = "collapse-whitespace"
)

// Settings holds the effective conversion settings.
type Settings struct {
	Input    InputSettings    `json:"input"`
	Output   OutputSettings   `json:"output"`
	Pipeline PipelineSettings `json:"pipeline"`
}

// InputSettings configures how .trs files are read.
type InputSettings struct {
	// Encoding is the IANA name of the input character set.
	Encoding string `json:"encoding"`
}

// OutputSettings configures where TextGrid files are written.
type OutputSettings struct {
	// Dir is the output directory. Empty means next to the input file.
	Dir string `json:"dir"`

	// Extension replaces the input file extension.
	Extension string `json:"extension"`
}

// PipelineSettings lists the post-processors run after parsing.
type PipelineSettings struct {
	Processors []string `json:"processors"`
}

// DefaultSettings returns settings that reproduce the classic conversion.
func DefaultSettings() Settings {
	return Settings{
		Input:    InputSettings{Encoding: DefaultEncoding},
		Output:   OutputSettings{Extension: DefaultOutputExtension},
		Pipeline: PipelineSettings{Processors: []string{ProcessorIntervals}},
	}
}

// Validate checks the settings. Every failure wraps ErrInvalidInput.
func (s Settings) Validate() error {
	if strings.TrimSpace(s.Input.Encoding) == "" {
		return fmt.Errorf("%w: input encoding must not be empty", ErrInvalidInput)
	}
	return ValidateExtension(s.Output.Extension)
}

// ValidateExtension checks an output extension: a dot followed by at least
// one character, and never the transcript extension, which would make a
// conversion overwrite its input.
func ValidateExtension(ext string) error {
	if len(ext) < 2 || ext[0] != '.' {
		return fmt.Errorf("%w: output extension %q must start with a dot", ErrInvalidInput, ext)
	}
	if strings.EqualFold(ext, TranscriptExtension) {
		return fmt.Errorf("%w: output extension %q would overwrite the input", ErrInvalidInput, ext)
	}
	return nil
}
