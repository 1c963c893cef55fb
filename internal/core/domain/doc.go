// Package domain defines the core entities for trsgrid.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Transcript: A parsed Transcriber document
//   - Episode, Section, Turn: The containment levels of a transcript
//   - Chunk: A span of transcribed text anchored to a start time
//   - Settings: Effective conversion settings
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
