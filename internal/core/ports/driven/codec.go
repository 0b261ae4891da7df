package driven

import "github.com/custodia-labs/edi-cli/internal/core/domain"

// Codec converts between native EDI text and a structured value for
// a single routing key. Implementations hold the message grammar.
type Codec interface {
	// Parse converts a complete decoded document into a structured value.
	Parse(text string) (domain.StructuredValue, error)

	// Serialize converts a structured value back into document text.
	Serialize(value domain.StructuredValue) (string, error)
}

// Capability binds a codec to the routing key it serves.
// A capability always supports both directions.
type Capability struct {
	Key   domain.RoutingKey
	Codec Codec
}
