package tui

import (
	"context"

	"github.com/custodia-labs/edi-cli/internal/core/domain"
)

// MockConversionService implements driving.ConversionService for tests.
type MockConversionService struct {
	Dialect domain.Dialect
	Key     domain.RoutingKey
	Err     error
}

func (m *MockConversionService) Encoding(_ context.Context, _ domain.Input) domain.Dialect {
	return m.Dialect
}

func (m *MockConversionService) Type(_ context.Context, _ domain.Input) (domain.RoutingKey, error) {
	return m.Key, m.Err
}

func (m *MockConversionService) ToStructured(_ context.Context, _ domain.Input) (*domain.Conversion, error) {
	return nil, m.Err
}

func (m *MockConversionService) ToDocument(_ context.Context, _ domain.Input) (*domain.Conversion, error) {
	return nil, m.Err
}

// MockHistoryService implements driving.HistoryService for tests.
type MockHistoryService struct {
	Records []domain.ConversionRecord
	Err     error
}

func (m *MockHistoryService) List(_ context.Context, _ int) ([]domain.ConversionRecord, error) {
	return m.Records, m.Err
}

func (m *MockHistoryService) Get(_ context.Context, id string) (*domain.ConversionRecord, error) {
	for i := range m.Records {
		if m.Records[i].ID == id {
			return &m.Records[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockHistoryService) Clear(_ context.Context) error {
	m.Records = nil
	return m.Err
}
