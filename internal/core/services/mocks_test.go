package services

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/custodia-labs/edi-cli/internal/core/domain"
)

// mockCodec is a testify mock of driven.Codec.
type mockCodec struct {
	mock.Mock
}

func (m *mockCodec) Parse(text string) (domain.StructuredValue, error) {
	args := m.Called(text)
	if v := args.Get(0); v != nil {
		return v.(domain.StructuredValue), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCodec) Serialize(value domain.StructuredValue) (string, error) {
	args := m.Called(value)
	return args.String(0), args.Error(1)
}

// mockMetrics is a testify mock of driven.ConversionMetrics.
type mockMetrics struct {
	mock.Mock
}

func (m *mockMetrics) ObserveConversion(cmd domain.Command, dialect domain.Dialect, success bool, elapsed time.Duration) {
	m.Called(cmd, dialect, success, elapsed)
}

// fixedDecoder returns its text unchanged with a fixed charset.
type fixedDecoder struct {
	charset domain.Charset
}

func (d fixedDecoder) Decode(data []byte) domain.DecodedText {
	return domain.DecodedText{Text: string(data), Charset: d.charset}
}
