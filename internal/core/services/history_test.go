package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/edi-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/edi-cli/internal/core/domain"
)

func TestHistoryService_ListGetClear(t *testing.T) {
	store := memory.NewHistoryStore()
	service := NewHistoryService(store)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.ConversionRecord{ID: "a", Command: domain.CommandType, CreatedAt: time.Now()}))

	records, err := service.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec, err := service.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, domain.CommandType, rec.Command)

	require.NoError(t, service.Clear(ctx))
	_, err = service.Get(ctx, "a")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHistoryService_InvalidArguments(t *testing.T) {
	service := NewHistoryService(memory.NewHistoryStore())
	ctx := context.Background()

	_, err := service.List(ctx, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = service.Get(ctx, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestHistoryService_NilStore(t *testing.T) {
	service := NewHistoryService(nil)
	ctx := context.Background()

	records, err := service.List(ctx, 5)
	assert.NoError(t, err)
	assert.Empty(t, records)

	_, err = service.Get(ctx, "x")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.NoError(t, service.Clear(ctx))
}
