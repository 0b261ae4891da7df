package mcp

import (
	"context"

	"github.com/custodia-labs/edi-cli/internal/core/domain"
	"github.com/custodia-labs/edi-cli/internal/core/ports/driving"
)

// mockConversionService is a mock implementation of driving.ConversionService.
type mockConversionService struct {
	dialect    domain.Dialect
	key        domain.RoutingKey
	conversion *domain.Conversion
	err        error
	lastInput  domain.Input
}

func (m *mockConversionService) Encoding(_ context.Context, in domain.Input) domain.Dialect {
	m.lastInput = in
	return m.dialect
}

func (m *mockConversionService) Type(_ context.Context, in domain.Input) (domain.RoutingKey, error) {
	m.lastInput = in
	return m.key, m.err
}

func (m *mockConversionService) ToStructured(_ context.Context, in domain.Input) (*domain.Conversion, error) {
	m.lastInput = in
	return m.conversion, m.err
}

func (m *mockConversionService) ToDocument(_ context.Context, in domain.Input) (*domain.Conversion, error) {
	m.lastInput = in
	return m.conversion, m.err
}

// mockCatalog is a mock implementation of driving.CapabilityCatalog.
type mockCatalog struct {
	keys []domain.RoutingKey
}

func (m *mockCatalog) Keys() []domain.RoutingKey {
	return m.keys
}

func (m *mockCatalog) Supports(key domain.RoutingKey) bool {
	for _, k := range m.keys {
		if k == key {
			return true
		}
	}
	return false
}

// mockHistoryService is a mock implementation of driving.HistoryService.
type mockHistoryService struct {
	records []domain.ConversionRecord
	err     error
}

func (m *mockHistoryService) List(_ context.Context, _ int) ([]domain.ConversionRecord, error) {
	return m.records, m.err
}

func (m *mockHistoryService) Get(_ context.Context, id string) (*domain.ConversionRecord, error) {
	for i := range m.records {
		if m.records[i].ID == id {
			return &m.records[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockHistoryService) Clear(_ context.Context) error {
	return m.err
}

// Interface compliance checks.
var (
	_ driving.ConversionService = (*mockConversionService)(nil)
	_ driving.CapabilityCatalog = (*mockCatalog)(nil)
	_ driving.HistoryService    = (*mockHistoryService)(nil)
)
