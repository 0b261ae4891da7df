package services

import (
	"fmt"
	"sort"

	"github.com/custodia-labs/edi-cli/internal/core/domain"
	"github.com/custodia-labs/edi-cli/internal/core/ports/driven"
	"github.com/custodia-labs/edi-cli/internal/core/ports/driving"
)

// Ensure CapabilityRegistry implements the interface.
var _ driving.CapabilityCatalog = (*CapabilityRegistry)(nil)

// CapabilityRegistry is the closed table of routing keys the application
// converts. Both conversion directions consult the same table, so a key that
// parses always serializes. The registry is read-only after construction and
// safe for concurrent use.
type CapabilityRegistry struct {
	codecs map[domain.RoutingKey]driven.Codec
	keys   []domain.RoutingKey
}

// NewCapabilityRegistry builds a registry from caps.
// Duplicate keys and capabilities without a codec are rejected.
func NewCapabilityRegistry(caps []driven.Capability) (*CapabilityRegistry, error) {
	r := &CapabilityRegistry{
		codecs: make(map[domain.RoutingKey]driven.Codec, len(caps)),
		keys:   make([]domain.RoutingKey, 0, len(caps)),
	}

	for _, c := range caps {
		if c.Codec == nil {
			return nil, fmt.Errorf("capability %s: %w: nil codec", c.Key.Qualified(), domain.ErrInvalidInput)
		}
		if _, exists := r.codecs[c.Key]; exists {
			return nil, fmt.Errorf("capability %s: %w: registered twice", c.Key.Qualified(), domain.ErrInvalidInput)
		}
		r.codecs[c.Key] = c.Codec
		r.keys = append(r.keys, c.Key)
	}

	sort.Slice(r.keys, func(i, j int) bool {
		a, b := r.keys[i], r.keys[j]
		if a.Dialect != b.Dialect {
			return a.Dialect < b.Dialect
		}
		if a.Version != b.Version {
			return a.Version < b.Version
		}
		return a.MessageType < b.MessageType
	})

	return r, nil
}

// Lookup returns the codec registered for key.
// An absent key yields *domain.UnsupportedKeyError carrying that key.
func (r *CapabilityRegistry) Lookup(key domain.RoutingKey) (driven.Codec, error) {
	codec, ok := r.codecs[key]
	if !ok {
		return nil, &domain.UnsupportedKeyError{Key: key}
	}
	return codec, nil
}

// Keys returns every registered routing key, sorted by dialect, version and type.
func (r *CapabilityRegistry) Keys() []domain.RoutingKey {
	keys := make([]domain.RoutingKey, len(r.keys))
	copy(keys, r.keys)
	return keys
}

// Supports reports whether a capability exists for key.
func (r *CapabilityRegistry) Supports(key domain.RoutingKey) bool {
	_, ok := r.codecs[key]
	return ok
}
