package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/edi-cli/internal/core/domain"
)

func TestProbeRoutingKey(t *testing.T) {
	value := `{"isa":{"01":"00"},"functional_group":[{"gs":{"01":"IO","08":"004010"},` +
		`"segments":[{"st":{"01":"310","02":"35353"},"body":[],"se":{}}],"ge":{}}],"iea":{}}`

	key, err := probeRoutingKey(domain.StructuredValue(value))

	require.NoError(t, err)
	assert.Equal(t, x12Key("004010", "310"), key)
}

func TestProbeRoutingKey_EdifactNotSupported(t *testing.T) {
	for _, value := range []string{`{"unb":{}}`, `{"una":"UNA:+.? '","unb":{}}`, `{"unh":{"01":"1"}}`} {
		_, err := probeRoutingKey(domain.StructuredValue(value))

		var notSupported *domain.NotSupportedError
		require.True(t, errors.As(err, &notSupported), value)
		assert.Equal(t, domain.DirectionToDocument, notSupported.Direction)
		assert.Equal(t, domain.DialectEdifact, notSupported.Dialect)
		assert.NotErrorIs(t, err, domain.ErrUnsupportedKey)
	}
}

func TestProbeRoutingKey_ShapeErrors(t *testing.T) {
	tests := []struct {
		name  string
		value string
		path  string
	}{
		{"not json", `ISA*00~`, "top-level object"},
		{"array", `[1,2]`, "top-level object"},
		{"no routing fields", `{"hello":"world"}`, "isa"},
		{"no groups", `{"isa":{}}`, "functional_group[0]"},
		{"empty groups", `{"isa":{},"functional_group":[]}`, "functional_group[0]"},
		{"group not object", `{"isa":{},"functional_group":["x"]}`, "functional_group[0]"},
		{"no gs", `{"isa":{},"functional_group":[{}]}`, "functional_group[0].gs"},
		{"no version", `{"isa":{},"functional_group":[{"gs":{"01":"IO"}}]}`, "functional_group[0].gs.08"},
		{"empty version", `{"isa":{},"functional_group":[{"gs":{"08":""}}]}`, "functional_group[0].gs.08"},
		{"numeric version", `{"isa":{},"functional_group":[{"gs":{"08":4010}}]}`, "functional_group[0].gs.08"},
		{"no sets", `{"isa":{},"functional_group":[{"gs":{"08":"004010"}}]}`, "segments[0]"},
		{"no st", `{"isa":{},"functional_group":[{"gs":{"08":"004010"},"segments":[{}]}]}`, "functional_group[0].segments[0].st"},
		{"no type", `{"isa":{},"functional_group":[{"gs":{"08":"004010"},"segments":[{"st":{}}]}]}`, "functional_group[0].segments[0].st.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := probeRoutingKey(domain.StructuredValue(tt.value))

			var shape *domain.StructuredShapeError
			require.True(t, errors.As(err, &shape), "got %v", err)
			assert.Equal(t, tt.path, shape.Path)
			assert.ErrorIs(t, err, domain.ErrStructuredShape)
		})
	}
}
