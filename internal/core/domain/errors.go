package domain

import "errors"

// Domain errors represent conversion failures.
// Callers classify them with errors.Is; the CLI decides whether a failure
// skips the current file or aborts the run.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown post-processor name.
	ErrUnsupportedType = errors.New("unsupported type")

	// I/O Errors.

	// ErrRead indicates an input file could not be opened or read.
	ErrRead = errors.New("read failed")

	// ErrWrite indicates an output file could not be created or written.
	ErrWrite = errors.New("write failed")

	// ErrUnsupportedEncoding indicates the configured input character set is unknown.
	ErrUnsupportedEncoding = errors.New("unsupported encoding")

	// Parse Errors.

	// ErrSyntax indicates the input is not well-formed XML.
	ErrSyntax = errors.New("syntax error")

	// ErrParse indicates a Transcriber-specific parse failure.
	// Every error below in this group also matches ErrParse.
	ErrParse = errors.New("parse error")

	// ErrMissingAttribute indicates a required attribute is absent.
	ErrMissingAttribute = errors.New("missing attribute")

	// ErrInvalidNumber indicates a time attribute is not a decimal number.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrMissingSync indicates text that is not preceded by a Sync timestamp.
	ErrMissingSync = errors.New("text without preceding Sync")

	// ErrUnexpectedElement indicates an element or text outside its container.
	ErrUnexpectedElement = errors.New("unexpected element")

	// Export Errors.

	// ErrUnsupportedStructure indicates the transcript shape cannot be exported.
	// TextGrid export handles exactly one episode containing one section.
	ErrUnsupportedStructure = errors.New("unsupported transcript structure")
)
