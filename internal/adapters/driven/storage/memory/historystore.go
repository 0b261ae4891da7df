package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/custodia-labs/edi-cli/internal/core/domain"
	"github.com/custodia-labs/edi-cli/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of driven.HistoryStore.
type HistoryStore struct {
	mu      sync.RWMutex
	records map[string]domain.ConversionRecord
	seq     map[string]int
	next    int
}

// NewHistoryStore creates a new in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{
		records: make(map[string]domain.ConversionRecord),
		seq:     make(map[string]int),
	}
}

// Save stores a record, assigning an ID when it has none.
func (s *HistoryStore) Save(_ context.Context, record domain.ConversionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if _, exists := s.records[record.ID]; !exists {
		s.next++
		s.seq[record.ID] = s.next
	}
	s.records[record.ID] = record
	return nil
}

// Get retrieves a record by ID.
func (s *HistoryStore) Get(_ context.Context, id string) (*domain.ConversionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &record, nil
}

// List returns up to limit records, newest first.
// Records with equal timestamps are ordered by insertion.
func (s *HistoryStore) List(_ context.Context, limit int) ([]domain.ConversionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.ConversionRecord, 0, len(s.records))
	for _, record := range s.records {
		result = append(result, record)
	}
	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return s.seq[a.ID] > s.seq[b.ID]
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// Clear removes all records.
func (s *HistoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make(map[string]domain.ConversionRecord)
	s.seq = make(map[string]int)
	return nil
}
