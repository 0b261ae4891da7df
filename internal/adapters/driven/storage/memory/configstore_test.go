package memory

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore(t *testing.T) {
	store := NewConfigStore()
	require.NotNil(t, store)
	assert.Empty(t, store.Keys())
	assert.Equal(t, ":memory:", store.Path())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("output.pretty", false))
	require.NoError(t, store.Set("output.pretty", true))

	val, ok := store.Get("output.pretty")
	assert.True(t, ok)
	assert.Equal(t, true, val)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_StoresValuesAsGiven(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("watch.extensions", []any{".x12", 3}))

	val, ok := store.Get("watch.extensions")

	assert.True(t, ok)
	assert.Equal(t, []any{".x12", 3}, val)
}

func TestConfigStore_KeysSorted(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("watch.rate", 5))
	require.NoError(t, store.Set("history.enabled", true))
	require.NoError(t, store.Set("output.pretty", true))

	assert.Equal(t, []string{"history.enabled", "output.pretty", "watch.rate"}, store.Keys())
}

func TestConfigStore_Concurrency(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			key := fmt.Sprintf("key.%d", id)
			_ = store.Set(key, id)
			val, _ := store.Get(key)
			assert.Equal(t, id, val)
			_ = store.Keys()
		}(i)
	}
	wg.Wait()

	assert.Len(t, store.Keys(), 20)
}
