package domain

import "time"

// Command names a dispatcher entry point.
type Command string

// Commands understood by the conversion dispatcher.
const (
	CommandEncoding     Command = "encoding"
	CommandType         Command = "type"
	CommandToStructured Command = "edi2json"
	CommandToDocument   Command = "json2edi"
)

// Direction is the conversion direction of a capability invocation.
type Direction string

const (
	// DirectionToStructured converts native EDI text into a structured value.
	DirectionToStructured Direction = "document->structured"

	// DirectionToDocument converts a structured value back into EDI text.
	DirectionToDocument Direction = "structured->document"
)

// Stage is a step of the dispatch pipeline. A failed invocation
// reports the stage it stopped in.
type Stage string

// Pipeline stages, in order.
const (
	StageDecoding      Stage = "decoding"
	StageClassifying   Stage = "classifying"
	StageExtractingKey Stage = "extracting key"
	StageLookingUp     Stage = "looking up"
	StageInvoking      Stage = "invoking"
	StageDone          Stage = "done"
)

// StructuredValue is the serialised structured document. The core only
// probes it for a routing key and otherwise passes it through.
type StructuredValue []byte

// String returns the serialised text.
func (v StructuredValue) String() string {
	return string(v)
}

// Conversion is the result of a successful dispatch.
type Conversion struct {
	// Key is the routing key the input resolved to.
	Key RoutingKey

	// Charset is the encoding the input was decoded with.
	Charset Charset

	// Output is the emitted text: a structured value or EDI document.
	Output string
}

// ConversionRecord captures the terminal state of one invocation.
type ConversionRecord struct {
	// ID is the unique identifier of the record.
	ID string

	// Command is the dispatcher entry point that ran.
	Command Command

	// Input designates where the input came from (path or "-").
	Input string

	// Dialect is the classified dialect, if classification was reached.
	Dialect Dialect

	// Version is the routing key version, if extracted.
	Version string

	// MessageType is the routing key message type, if extracted.
	MessageType string

	// Charset is the decode charset, if decoding was reached.
	Charset Charset

	// Stage is the last stage reached; StageDone on success.
	Stage Stage

	// Success is true when the invocation reached StageDone.
	Success bool

	// Error holds the failure message when Success is false.
	Error string

	// CreatedAt is when the invocation finished.
	CreatedAt time.Time
}

// Key returns the routing key stored in the record.
func (r *ConversionRecord) Key() RoutingKey {
	return NewRoutingKey(r.Dialect, r.Version, r.MessageType)
}

// Input is raw input acquired before the pipeline starts.
type Input struct {
	// Name designates the source: a file path or "-" for stdin.
	Name string

	// Content is the complete byte buffer.
	Content []byte
}
