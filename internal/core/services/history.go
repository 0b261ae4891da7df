package services

import (
	"context"

	"github.com/custodia-labs/edi-cli/internal/core/domain"
	"github.com/custodia-labs/edi-cli/internal/core/ports/driven"
	"github.com/custodia-labs/edi-cli/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService exposes recorded conversions.
type HistoryService struct {
	store driven.HistoryStore
}

// NewHistoryService creates a new history service.
func NewHistoryService(store driven.HistoryStore) *HistoryService {
	return &HistoryService{store: store}
}

// List returns up to limit records, newest first.
func (s *HistoryService) List(ctx context.Context, limit int) ([]domain.ConversionRecord, error) {
	if s.store == nil {
		return nil, nil
	}
	if limit < 0 {
		return nil, domain.ErrInvalidInput
	}
	return s.store.List(ctx, limit)
}

// Get retrieves a single record.
func (s *HistoryService) Get(ctx context.Context, id string) (*domain.ConversionRecord, error) {
	if s.store == nil {
		return nil, domain.ErrNotFound
	}
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.store.Get(ctx, id)
}

// Clear removes all records.
func (s *HistoryService) Clear(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	return s.store.Clear(ctx)
}
