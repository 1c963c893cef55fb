package trs

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/trsgrid/internal/core/domain"
)

// ParseError reports a Transcriber-specific failure at a point in the input.
// It matches domain.ErrParse and its cause with errors.Is.
type ParseError struct {
	// Element is the element being handled, empty for text.
	Element string

	// Attr is the offending attribute, if any.
	Attr string

	// Value is the offending attribute value or text excerpt.
	Value string

	// Line is the input line, or 0 when unknown.
	Line int

	// Err is the domain cause, such as domain.ErrInvalidNumber.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("parse error")
	if e.Line > 0 {
		fmt.Fprintf(&b, " at line %d", e.Line)
	}
	if e.Element != "" {
		fmt.Fprintf(&b, " in <%s>", e.Element)
	}
	if e.Attr != "" {
		fmt.Fprintf(&b, " attribute %s", e.Attr)
	}
	if e.Value != "" {
		fmt.Fprintf(&b, " %q", e.Value)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns domain.ErrParse and the cause.
func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{domain.ErrParse}
	}
	return []error{domain.ErrParse, e.Err}
}
