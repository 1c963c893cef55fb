package trs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/trsgrid/internal/core/domain"
)

func sectionStart(category, start, end string) Event {
	return Start(ElementSection, map[string]string{"type": category, "startTime": start, "endTime": end})
}

func turnStart(start, end string) Event {
	return Start(ElementTurn, map[string]string{"startTime": start, "endTime": end})
}

func sync(time string) Event {
	return Start(ElementSync, map[string]string{"time": time})
}

// handleAll applies events in order and returns the first error.
func handleAll(b *Builder, events ...Event) error {
	for _, ev := range events {
		if err := b.Handle(ev); err != nil {
			return err
		}
	}
	return nil
}

func TestBuilder_Phases(t *testing.T) {
	b := NewBuilder()
	assert.Equal(t, PhaseNoDocument, b.Phase())

	steps := []struct {
		event Event
		phase Phase
	}{
		{Start(ElementEpisode, nil), PhaseInEpisode},
		{sectionStart("report", "0", "10"), PhaseInSection},
		{turnStart("0", "10"), PhaseInTurn},
		{sync("0"), PhaseInTurnPending},
		{End(ElementSync), PhaseInTurnPending},
		{Text("hello"), PhaseInTurn},
		{sync("5"), PhaseInTurnPending},
		{End(ElementTurn), PhaseInSection},
		{End(ElementSection), PhaseInEpisode},
		{End(ElementEpisode), PhaseNoDocument},
	}

	for i, step := range steps {
		require.NoError(t, b.Handle(step.event), "step %d", i)
		assert.Equal(t, step.phase, b.Phase(), "step %d (%s %s)", i, step.event.Kind, step.event.Name)
	}
}

func TestBuilder_MinimalDocument(t *testing.T) {
	b := NewBuilder()
	err := handleAll(b,
		Start(ElementEpisode, nil),
		sectionStart("report", "0", "10"),
		turnStart("0", "10"),
		sync("0"), End(ElementSync), Text("\n hello \n"),
		sync("5"), End(ElementSync), Text("world"),
		End(ElementTurn),
		End(ElementSection),
		End(ElementEpisode),
	)
	require.NoError(t, err)

	tr := b.Transcript()
	require.Equal(t, 1, tr.Len())
	require.Equal(t, 1, tr.Episodes[0].Len())
	section := tr.Episodes[0].Sections[0]
	assert.Equal(t, "report", section.Category)
	assert.Equal(t, 0.0, section.Start)
	assert.Equal(t, 10.0, section.End)
	require.Equal(t, 1, section.Len())
	assert.Equal(t, []domain.Chunk{
		{Start: 0, End: domain.TimeUnset, Text: "hello"},
		{Start: 5, End: domain.TimeUnset, Text: "world"},
	}, section.Turns[0].Chunks)
}

func TestBuilder_WhitespaceTextIgnored(t *testing.T) {
	b := NewBuilder()
	err := handleAll(b,
		Start(ElementEpisode, nil),
		Text("\n  \t"),
		sectionStart("report", "0", "1"),
		turnStart("0", "1"),
		Text("   "),
		sync("0"),
		Text("\n"),
	)
	require.NoError(t, err)

	assert.Equal(t, PhaseInTurnPending, b.Phase())
	assert.Equal(t, 0, b.turn.Len())
}

func TestBuilder_SyncOverwritesPending(t *testing.T) {
	b := NewBuilder()
	err := handleAll(b,
		Start(ElementEpisode, nil),
		sectionStart("report", "0", "9"),
		turnStart("0", "9"),
		sync("1"), sync("2"), Text("x"),
	)
	require.NoError(t, err)

	assert.Equal(t, 2.0, b.turn.Chunks[0].Start)
}

func TestBuilder_UnknownElementsPassThrough(t *testing.T) {
	b := NewBuilder()
	err := handleAll(b,
		Start("Trans", map[string]string{"scribe": "x"}),
		Start("Speakers", nil), End("Speakers"),
		Start(ElementEpisode, nil),
		sectionStart("report", "0", "3"),
		turnStart("0", "3"),
		sync("0"),
		Start("Event", map[string]string{"desc": "noise"}), End("Event"),
		Text("a"),
		Start("Who", map[string]string{"nb": "1"}), End("Who"),
		End(ElementTurn),
		End(ElementSection),
		End(ElementEpisode),
		End("Trans"),
	)
	require.NoError(t, err)

	assert.Equal(t, domain.Stats{Episodes: 1, Sections: 1, Turns: 1, Chunks: 1}, b.Transcript().Stats())
}

func TestBuilder_NumberErrors(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		attr  string
	}{
		{"section start", sectionStart("report", "abc", "10"), "startTime"},
		{"section end", sectionStart("report", "0", "1,5"), "endTime"},
		{"turn start", turnStart("", "10"), "startTime"},
		{"turn end", turnStart("0", "NaN"), "endTime"},
		{"sync time", sync("soon"), "time"},
		{"sync infinite", sync("inf"), "time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder()
			require.NoError(t, b.Handle(Start(ElementEpisode, nil)))
			if tt.event.Name != ElementSection {
				require.NoError(t, b.Handle(sectionStart("report", "0", "10")))
			}

			err := b.Handle(tt.event)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrParse)
			assert.ErrorIs(t, err, domain.ErrInvalidNumber)
			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.event.Name, perr.Element)
			assert.Equal(t, tt.attr, perr.Attr)
		})
	}
}

func TestBuilder_InvalidSectionBuildsNothing(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Handle(Start(ElementEpisode, nil)))

	err := b.Handle(sectionStart("report", "abc", "10"))

	require.ErrorIs(t, err, domain.ErrParse)
	assert.Nil(t, b.section)
	assert.Equal(t, PhaseInEpisode, b.Phase())
}

func TestBuilder_MissingAttribute(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Handle(Start(ElementEpisode, nil)))

	err := b.Handle(Start(ElementSection, map[string]string{"startTime": "0", "endTime": "1"}))

	assert.ErrorIs(t, err, domain.ErrParse)
	assert.ErrorIs(t, err, domain.ErrMissingAttribute)
	assert.Contains(t, err.Error(), "attribute type")
}

func TestBuilder_TextWithoutSync(t *testing.T) {
	b := NewBuilder()
	err := handleAll(b,
		Start(ElementEpisode, nil),
		sectionStart("report", "0", "10"),
		turnStart("0", "10"),
		sync("0"), Text("first"),
		Text("second"),
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingSync)
	assert.ErrorIs(t, err, domain.ErrParse)
	assert.Contains(t, err.Error(), `"second"`)
}

func TestBuilder_InlineEventSplitsUtterance(t *testing.T) {
	// Text after an inline Event has no Sync of its own and is rejected.
	b := NewBuilder()
	err := handleAll(b,
		Start(ElementEpisode, nil),
		sectionStart("report", "0", "10"),
		turnStart("0", "10"),
		sync("0"), Text("hello "),
		Start("Event", map[string]string{"desc": "laugh", "type": "noise"}), End("Event"),
		Text(" world"),
	)

	assert.ErrorIs(t, err, domain.ErrMissingSync)
	assert.Contains(t, err.Error(), `"world"`)
}

func TestBuilder_TextOutsideTurn(t *testing.T) {
	b := NewBuilder()
	err := handleAll(b, Start(ElementEpisode, nil), sync("0"), Text("stray"))

	assert.ErrorIs(t, err, domain.ErrUnexpectedElement)
}

func TestBuilder_PendingClearedAtTurnEnd(t *testing.T) {
	b := NewBuilder()
	err := handleAll(b,
		Start(ElementEpisode, nil),
		sectionStart("report", "0", "10"),
		turnStart("0", "5"), sync("5"), End(ElementTurn),
		turnStart("5", "10"), Text("late"),
	)

	assert.ErrorIs(t, err, domain.ErrMissingSync)
}

func TestBuilder_MisplacedEnds(t *testing.T) {
	tests := []struct {
		name   string
		events []Event
	}{
		{"turn outside section", []Event{Start(ElementEpisode, nil), turnStart("0", "1"), End(ElementTurn)}},
		{"section outside episode", []Event{sectionStart("report", "0", "1"), End(ElementSection)}},
		{"episode never opened", []Event{End(ElementEpisode)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := handleAll(NewBuilder(), tt.events...)
			assert.ErrorIs(t, err, domain.ErrUnexpectedElement)
		})
	}
}

func TestBuilder_UnknownEventKind(t *testing.T) {
	err := NewBuilder().Handle(Event{Kind: EventKind(42)})
	assert.Error(t, err)
}

func TestBuild_StopsOnError(t *testing.T) {
	seen := 0
	events := func(yield func(Event, error) bool) {
		for _, ev := range []Event{Start(ElementEpisode, nil), sectionStart("report", "x", "1"), End(ElementEpisode)} {
			seen++
			if !yield(ev, nil) {
				return
			}
		}
	}

	tr, err := Build(events)

	assert.Nil(t, tr)
	assert.ErrorIs(t, err, domain.ErrInvalidNumber)
	assert.Equal(t, 2, seen)
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "no-document", PhaseNoDocument.String())
	assert.Equal(t, "in-turn-pending", PhaseInTurnPending.String())
	assert.Equal(t, "Phase(7)", Phase(7).String())
}

func TestParseError_Error(t *testing.T) {
	err := &ParseError{Element: "Sync", Attr: "time", Value: "x", Line: 3, Err: domain.ErrInvalidNumber}
	assert.Equal(t, `parse error at line 3 in <Sync> attribute time "x": invalid number`, err.Error())

	bare := &ParseError{}
	assert.Equal(t, "parse error", bare.Error())
	assert.ErrorIs(t, bare, domain.ErrParse)
}
