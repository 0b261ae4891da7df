package driving

import (
	"context"

	"github.com/custodia-labs/edi-cli/internal/core/domain"
)

// ConversionService dispatches inputs through decode, classification,
// header extraction and capability lookup. Every method runs to a terminal
// state; a failure at any stage short-circuits the remaining stages.
type ConversionService interface {
	// Encoding classifies the input dialect. It never fails.
	Encoding(ctx context.Context, in domain.Input) domain.Dialect

	// Type extracts the routing key of an EDI document.
	Type(ctx context.Context, in domain.Input) (domain.RoutingKey, error)

	// ToStructured converts an EDI document into a structured value.
	ToStructured(ctx context.Context, in domain.Input) (*domain.Conversion, error)

	// ToDocument converts a structured value back into an EDI document.
	ToDocument(ctx context.Context, in domain.Input) (*domain.Conversion, error)
}
