// Package trs reads Transcriber (.trs) files into domain transcripts.
//
// Reading happens in three steps:
//
//   - Events turns the XML token stream into a lazy sequence of Event values
//     (element start, element end, text).
//   - Builder folds those events into a domain.Transcript, one transition
//     per event, keeping the open episode, section, turn and the pending
//     Sync timestamp in an explicit parse context.
//   - Reader owns decoding: it reads the whole file in a configurable
//     character set (ISO-8859-1 by default) and drives the other two.
//
// The resulting transcript has chunk end times unset; call
// Transcript.DeriveIntervals before treating chunks as intervals.
package trs
