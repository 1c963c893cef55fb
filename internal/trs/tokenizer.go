package trs

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/custodia-labs/trsgrid/internal/core/domain"
)

// Events tokenizes already-decoded XML from r.
//
// Text split only by comments or processing instructions is delivered as a
// single text event. The encoding label in the XML declaration is ignored:
// the input must already be UTF-8. HTML named entities are accepted.
// A malformed document yields one error wrapping domain.ErrSyntax and ends
// the sequence.
func Events(r io.Reader) iter.Seq2[Event, error] {
	return func(yield func(Event, error) bool) {
		dec := xml.NewDecoder(r)
		dec.Entity = xml.HTMLEntity
		dec.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) {
			return input, nil
		}

		var text strings.Builder
		textLine := 0

		flush := func() bool {
			if text.Len() == 0 {
				return true
			}
			ev := Text(text.String())
			ev.Line = textLine
			text.Reset()
			return yield(ev, nil)
		}

		for {
			tok, err := dec.Token()
			if errors.Is(err, io.EOF) {
				flush()
				return
			}
			if err != nil {
				yield(Event{}, fmt.Errorf("%w: %w", domain.ErrSyntax, err))
				return
			}
			line, _ := dec.InputPos()

			switch t := tok.(type) {
			case xml.StartElement:
				if !flush() {
					return
				}
				attrs := make(map[string]string, len(t.Attr))
				for _, a := range t.Attr {
					attrs[a.Name.Local] = a.Value
				}
				ev := Start(t.Name.Local, attrs)
				ev.Line = line
				if !yield(ev, nil) {
					return
				}
			case xml.EndElement:
				if !flush() {
					return
				}
				ev := End(t.Name.Local)
				ev.Line = line
				if !yield(ev, nil) {
					return
				}
			case xml.CharData:
				if text.Len() == 0 {
					textLine = line
				}
				text.Write(t)
			}
		}
	}
}
