package driven

import (
	"context"

	"github.com/custodia-labs/edi-cli/internal/core/domain"
)

// HistoryStore persists conversion records.
type HistoryStore interface {
	// Save stores a record. Records are immutable once saved.
	Save(ctx context.Context, record domain.ConversionRecord) error

	// Get retrieves a record by ID.
	// Returns domain.ErrNotFound if the record does not exist.
	Get(ctx context.Context, id string) (*domain.ConversionRecord, error)

	// List returns up to limit records, newest first. A limit <= 0 returns all.
	List(ctx context.Context, limit int) ([]domain.ConversionRecord, error)

	// Clear removes all records.
	Clear(ctx context.Context) error
}
