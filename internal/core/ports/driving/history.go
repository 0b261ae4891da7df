package driving

import (
	"context"

	"github.com/custodia-labs/edi-cli/internal/core/domain"
)

// HistoryService exposes recorded conversions.
type HistoryService interface {
	// List returns up to limit records, newest first.
	List(ctx context.Context, limit int) ([]domain.ConversionRecord, error)

	// Get retrieves a single record.
	Get(ctx context.Context, id string) (*domain.ConversionRecord, error)

	// Clear removes all records.
	Clear(ctx context.Context) error
}
