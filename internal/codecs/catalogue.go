package codecs

import (
	"github.com/custodia-labs/edi-cli/internal/codecs/x12"
	"github.com/custodia-labs/edi-cli/internal/core/domain"
	"github.com/custodia-labs/edi-cli/internal/core/ports/driven"
)

// x12Catalogue maps an X12 version to its supported transaction sets.
var x12Catalogue = []struct {
	version string
	types   []string
}{
	{version: "003030", types: []string{"998"}},
	{version: "004010", types: []string{"204", "214", "309", "310", "315", "322", "404", "997", "998"}},
	{version: "005010", types: []string{"834", "835", "837"}},
	{version: "005030", types: []string{"404"}},
}

// Builtin returns a capability for every catalogued routing key.
func Builtin(opts x12.Options) []driven.Capability {
	var caps []driven.Capability
	for _, entry := range x12Catalogue {
		for _, msgType := range entry.types {
			key := domain.NewRoutingKey(domain.DialectX12, entry.version, msgType)
			caps = append(caps, driven.Capability{
				Key:   key,
				Codec: x12.New(key, opts),
			})
		}
	}
	return caps
}
