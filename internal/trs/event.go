package trs

import "fmt"

// EventKind identifies the kind of a tokenizer event.
type EventKind int

const (
	// EventStart is an element start tag.
	EventStart EventKind = iota + 1

	// EventEnd is an element end tag.
	EventEnd

	// EventText is character data between tags.
	EventText
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventEnd:
		return "end"
	case EventText:
		return "text"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is one item of the tokenizer output.
type Event struct {
	Kind EventKind

	// Name is the local element name for start and end events.
	Name string

	// Attrs holds the attributes of a start event, keyed by local name.
	Attrs map[string]string

	// Text is the raw character data of a text event.
	Text string

	// Line is the input line the event ended on, for error messages.
	Line int
}

// Start returns an element start event.
func Start(name string, attrs map[string]string) Event {
	return Event{Kind: EventStart, Name: name, Attrs: attrs}
}

// End returns an element end event.
func End(name string) Event {
	return Event{Kind: EventEnd, Name: name}
}

// Text returns a character data event.
func Text(text string) Event {
	return Event{Kind: EventText, Text: text}
}
