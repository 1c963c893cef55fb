package trs

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"

	"github.com/custodia-labs/trsgrid/internal/core/domain"
	"github.com/custodia-labs/trsgrid/internal/core/ports/driven"
	"github.com/custodia-labs/trsgrid/internal/logger"
)

// Ensure Reader implements the interface.
var _ driven.TranscriptReader = (*Reader)(nil)

// Reader reads Transcriber files in a fixed character set.
// A Reader keeps no parse state between calls and may be shared.
type Reader struct {
	encodingName string
	enc          encoding.Encoding
}

// Option configures a Reader.
type Option func(*Reader)

// WithEncoding sets the input character set by IANA name, e.g. "UTF-8".
func WithEncoding(name string) Option {
	return func(r *Reader) {
		if name != "" {
			r.encodingName = name
		}
	}
}

// NewReader creates a reader. The default character set is ISO-8859-1.
func NewReader(opts ...Option) (*Reader, error) {
	r := &Reader{encodingName: domain.DefaultEncoding}
	for _, opt := range opts {
		opt(r)
	}

	enc, name, err := LookupEncoding(r.encodingName)
	if err != nil {
		return nil, err
	}
	r.enc = enc
	r.encodingName = name
	return r, nil
}

// Open creates a reader and reads path with it.
func Open(path string, opts ...Option) (*domain.Transcript, error) {
	r, err := NewReader(opts...)
	if err != nil {
		return nil, err
	}
	return r.Read(path)
}

// LookupEncoding resolves an IANA character set name.
// It returns the encoding and its label: the MIME name where one exists
// ("ISO-8859-1", not the registry's "ISO_8859-1:1987"), else the IANA name.
func LookupEncoding(name string) (encoding.Encoding, string, error) {
	name = strings.TrimSpace(name)
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, "", fmt.Errorf("%w: %q", domain.ErrUnsupportedEncoding, name)
	}
	if label, err := ianaindex.MIME.Name(enc); err == nil && label != "" {
		return enc, label, nil
	}
	if label, err := ianaindex.IANA.Name(enc); err == nil && label != "" {
		return enc, label, nil
	}
	return enc, name, nil
}

// Encoding returns the canonical name of the input character set.
func (r *Reader) Encoding() string {
	return r.encodingName
}

// Read parses the file at path into a new transcript.
// Every call starts from an empty transcript.
func (r *Reader) Read(path string) (*domain.Transcript, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRead, err)
	}
	defer f.Close()

	logger.Debug("reading %s as %s", path, r.encodingName)

	t, err := r.Parse(f)
	if err != nil {
		return nil, err
	}
	t.Path = path

	st := t.Stats()
	logger.Debug("parsed %s: %d episodes, %d sections, %d turns, %d chunks",
		path, st.Episodes, st.Sections, st.Turns, st.Chunks)
	return t, nil
}

// Parse decodes all of src and builds a transcript from it.
func (r *Reader) Parse(src io.Reader) (*domain.Transcript, error) {
	decoded, err := io.ReadAll(transform.NewReader(src, r.enc.NewDecoder()))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRead, err)
	}

	t, err := Build(Events(bytes.NewReader(decoded)))
	if err != nil {
		return nil, err
	}
	t.Encoding = r.encodingName
	return t, nil
}
