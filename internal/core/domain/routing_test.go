package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDialect_String(t *testing.T) {
	assert.Equal(t, "X12", DialectX12.String())
	assert.Equal(t, "EDIFACT", DialectEdifact.String())
	assert.Equal(t, "UNKNOWN", DialectUnknown.String())
	assert.Equal(t, "UNKNOWN", Dialect("").String())
}

func TestDialect_IsKnown(t *testing.T) {
	assert.True(t, DialectX12.IsKnown())
	assert.True(t, DialectEdifact.IsKnown())
	assert.False(t, DialectUnknown.IsKnown())
	assert.False(t, Dialect("").IsKnown())
}

func TestRoutingKey_String(t *testing.T) {
	key := NewRoutingKey(DialectEdifact, "D00B", "IFTSTA")

	assert.Equal(t, "D00B/IFTSTA", key.String())
	assert.Equal(t, "EDIFACT D00B/IFTSTA", key.Qualified())
}

func TestRoutingKey_Equality(t *testing.T) {
	a := NewRoutingKey(DialectX12, "004010", "310")
	b := NewRoutingKey(DialectX12, "004010", "310")
	padded := NewRoutingKey(DialectX12, "004010 ", "310")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, padded)

	m := map[RoutingKey]bool{a: true}
	assert.True(t, m[b])
	assert.False(t, m[padded])
}

func TestRoutingKey_IsZero(t *testing.T) {
	assert.True(t, RoutingKey{}.IsZero())
	assert.True(t, RoutingKey{Dialect: DialectX12}.IsZero())
	assert.False(t, NewRoutingKey(DialectX12, "", "310").IsZero())
}

func TestConversionRecord_Key(t *testing.T) {
	r := &ConversionRecord{Dialect: DialectX12, Version: "005010", MessageType: "837"}

	assert.Equal(t, NewRoutingKey(DialectX12, "005010", "837"), r.Key())
}

func TestDecodedText_Lossy(t *testing.T) {
	assert.False(t, DecodedText{Charset: CharsetUTF8}.Lossy())
	assert.False(t, DecodedText{Charset: CharsetLatin}.Lossy())
	assert.True(t, DecodedText{Charset: CharsetLatinLossy}.Lossy())
}
