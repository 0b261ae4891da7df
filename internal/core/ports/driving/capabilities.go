package driving

import "github.com/custodia-labs/edi-cli/internal/core/domain"

// CapabilityCatalog describes the routing keys the application can convert.
type CapabilityCatalog interface {
	// Keys returns every registered routing key, sorted.
	Keys() []domain.RoutingKey

	// Supports reports whether a capability exists for key.
	Supports(key domain.RoutingKey) bool
}
