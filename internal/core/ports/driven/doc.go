// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - TranscriptReader: Parses .trs files (internal/trs)
//   - Renderer: Writes transcripts in an export format (internal/textgrid)
//   - PostProcessorPipeline: Transforms parsed transcripts (internal/postprocessors)
//
// # Optional Interfaces
//
//   - ConfigStore: Persistent settings. Without it, defaults are used.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or format package
package driven
