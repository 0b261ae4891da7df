package codecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/edi-cli/internal/codecs/x12"
	"github.com/custodia-labs/edi-cli/internal/core/domain"
)

func TestBuiltin(t *testing.T) {
	caps := Builtin(x12.Options{})

	require.Len(t, caps, 14)

	keys := make(map[domain.RoutingKey]bool, len(caps))
	for _, c := range caps {
		assert.False(t, keys[c.Key], "duplicate key %s", c.Key.Qualified())
		keys[c.Key] = true
		require.NotNil(t, c.Codec)
		assert.Equal(t, domain.DialectX12, c.Key.Dialect)
	}

	assert.True(t, keys[domain.NewRoutingKey(domain.DialectX12, "004010", "310")])
	assert.True(t, keys[domain.NewRoutingKey(domain.DialectX12, "005010", "837")])
	assert.True(t, keys[domain.NewRoutingKey(domain.DialectX12, "003030", "998")])
	assert.False(t, keys[domain.NewRoutingKey(domain.DialectX12, "004010", "999")])
}

func TestBuiltin_CodecsAreBoundToTheirKey(t *testing.T) {
	for _, c := range Builtin(x12.Options{}) {
		codec, ok := c.Codec.(*x12.Codec)
		require.True(t, ok)
		assert.Equal(t, c.Key, codec.Key())
	}
}
