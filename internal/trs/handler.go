package trs

import (
	"fmt"
	"iter"
	"math"
	"strconv"
	"strings"

	"github.com/custodia-labs/trsgrid/internal/core/domain"
)

// Element names the builder reacts to. Everything else passes through.
const (
	ElementEpisode = "Episode"
	ElementSection = "Section"
	ElementTurn    = "Turn"
	ElementSync    = "Sync"
)

// Phase describes how deep the builder is in the document.
type Phase int

const (
	// PhaseNoDocument means no episode is open.
	PhaseNoDocument Phase = iota

	// PhaseInEpisode means an episode is open but no section.
	PhaseInEpisode

	// PhaseInSection means a section is open but no turn.
	PhaseInSection

	// PhaseInTurn means a turn is open with no pending Sync time.
	PhaseInTurn

	// PhaseInTurnPending means a turn is open and a Sync time awaits text.
	PhaseInTurnPending
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseNoDocument:
		return "no-document"
	case PhaseInEpisode:
		return "in-episode"
	case PhaseInSection:
		return "in-section"
	case PhaseInTurn:
		return "in-turn"
	case PhaseInTurnPending:
		return "in-turn-pending"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Builder folds tokenizer events into a transcript.
// A Builder holds the parse context of exactly one document and is not
// safe for concurrent use; create one per parse.
type Builder struct {
	transcript *domain.Transcript

	// Entities under construction. Each is appended to its parent when
	// its end tag arrives.
	episode *domain.Episode
	section *domain.Section
	turn    *domain.Turn

	// pending is the last Sync time not yet consumed by text.
	// Sync elements do not nest, so one slot is enough.
	pending    float64
	hasPending bool
}

// NewBuilder returns a builder with an empty transcript.
func NewBuilder() *Builder {
	return &Builder{transcript: &domain.Transcript{}}
}

// Transcript returns the transcript built so far.
func (b *Builder) Transcript() *domain.Transcript {
	return b.transcript
}

// Phase reports the current parse phase.
func (b *Builder) Phase() Phase {
	switch {
	case b.turn != nil && b.hasPending:
		return PhaseInTurnPending
	case b.turn != nil:
		return PhaseInTurn
	case b.section != nil:
		return PhaseInSection
	case b.episode != nil:
		return PhaseInEpisode
	default:
		return PhaseNoDocument
	}
}

// Handle applies one event. On error the builder must be discarded.
func (b *Builder) Handle(ev Event) error {
	switch ev.Kind {
	case EventStart:
		return b.start(ev)
	case EventEnd:
		return b.end(ev)
	case EventText:
		return b.text(ev)
	default:
		return fmt.Errorf("unknown event kind %s", ev.Kind)
	}
}

func (b *Builder) start(ev Event) error {
	switch ev.Name {
	case ElementEpisode:
		b.episode = &domain.Episode{}

	case ElementSection:
		category, err := requireAttr(ev, "type")
		if err != nil {
			return err
		}
		start, end, err := timeBounds(ev)
		if err != nil {
			return err
		}
		b.section = &domain.Section{Category: category, Start: start, End: end}

	case ElementTurn:
		start, end, err := timeBounds(ev)
		if err != nil {
			return err
		}
		b.turn = &domain.Turn{Start: start, End: end}

	case ElementSync:
		t, err := timeAttr(ev, "time")
		if err != nil {
			return err
		}
		b.pending = t
		b.hasPending = true
	}
	return nil
}

func (b *Builder) end(ev Event) error {
	switch ev.Name {
	case ElementTurn:
		if b.turn == nil || b.section == nil {
			return unexpected(ev)
		}
		b.section.Append(*b.turn)
		b.turn = nil
		b.hasPending = false

	case ElementSection:
		if b.section == nil || b.episode == nil {
			return unexpected(ev)
		}
		b.episode.Append(*b.section)
		b.section = nil

	case ElementEpisode:
		if b.episode == nil {
			return unexpected(ev)
		}
		b.transcript.Append(*b.episode)
		b.episode = nil
	}
	return nil
}

func (b *Builder) text(ev Event) error {
	text := strings.TrimSpace(ev.Text)
	if text == "" {
		return nil
	}
	if b.turn == nil {
		return &ParseError{Value: excerpt(text), Line: ev.Line, Err: domain.ErrUnexpectedElement}
	}
	if !b.hasPending {
		return &ParseError{Value: excerpt(text), Line: ev.Line, Err: domain.ErrMissingSync}
	}

	b.turn.Append(domain.Chunk{Start: b.pending, End: domain.TimeUnset, Text: text})
	b.hasPending = false
	return nil
}

// Build folds a whole event sequence into a transcript.
// The first tokenizer or handler error aborts the fold and nothing is returned.
func Build(events iter.Seq2[Event, error]) (*domain.Transcript, error) {
	b := NewBuilder()
	for ev, err := range events {
		if err != nil {
			return nil, err
		}
		if err := b.Handle(ev); err != nil {
			return nil, err
		}
	}
	return b.Transcript(), nil
}

func requireAttr(ev Event, name string) (string, error) {
	v, ok := ev.Attrs[name]
	if !ok {
		return "", &ParseError{Element: ev.Name, Attr: name, Line: ev.Line, Err: domain.ErrMissingAttribute}
	}
	return v, nil
}

func timeAttr(ev Event, name string) (float64, error) {
	raw, err := requireAttr(ev, name)
	if err != nil {
		return 0, err
	}
	t, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(t) || math.IsInf(t, 0) {
		return 0, &ParseError{Element: ev.Name, Attr: name, Value: raw, Line: ev.Line, Err: domain.ErrInvalidNumber}
	}
	return t, nil
}

func timeBounds(ev Event) (start, end float64, err error) {
	if start, err = timeAttr(ev, "startTime"); err != nil {
		return 0, 0, err
	}
	if end, err = timeAttr(ev, "endTime"); err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

func unexpected(ev Event) error {
	return &ParseError{Element: ev.Name, Line: ev.Line, Err: domain.ErrUnexpectedElement}
}

// excerpt shortens text for error messages.
func excerpt(s string) string {
	const limit = 40
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit]) + "..."
}
