// Package domain defines the core business entities for edi.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Dialect: The EDI family of a document (X12, EDIFACT)
//   - RoutingKey: Dialect, version and message type selecting a codec
//   - DecodedText: Text recovered from raw input bytes
//   - ConversionRecord: The outcome of one command invocation
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
