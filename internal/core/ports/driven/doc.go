// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - TextDecoder: Recovers text from raw input bytes
//   - Codec: Structural parse/serialize for one routing key
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - HistoryStore: Conversion history persistence. Without it nothing is recorded.
//   - ConversionMetrics: Conversion counters. Without it nothing is observed.
//   - ConfigStore: Application configuration. Without it defaults apply.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or codec package
package driven
