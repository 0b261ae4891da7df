// Package envelope sniffs EDI envelopes without parsing the full grammar.
//
// It classifies text by its leading marker and extracts a routing key
// (version and message type) from two header segments. Delimiter
// assumptions live in one place: each dialect resolves its delimiters
// from the interchange header when present (ISA for X12, UNA for
// EDIFACT) and falls back to the standard set otherwise. The resolved
// delimiters drive a small tokenizer shared by both dialects.
//
// Nothing in this package mutates its input or keeps per-call state.
package envelope
