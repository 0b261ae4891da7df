package file

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/edi-cli/internal/core/domain"
	"github.com/custodia-labs/edi-cli/internal/logger"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
	assert.Empty(t, store.Keys())
}

func TestNewConfigStore_MkdirAllError(t *testing.T) {
	store, err := NewConfigStore("/dev/null/cannot/create/dirs")

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNewConfigStore_LoadCorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()
	err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("this is not valid TOML {{{[["), 0600)
	require.NoError(t, err)

	store, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNewConfigStore_WrongValueType(t *testing.T) {
	tmpDir := t.TempDir()
	err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("[watch]\nrate = \"fast\"\n"), 0600)
	require.NoError(t, err)

	_, err = NewConfigStore(tmpDir)

	assert.Error(t, err)
}

func TestNewConfigStore_UnknownKeysAreSkipped(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })

	tmpDir := t.TempDir()
	content := "[output]\npretty = true\ncolour = \"red\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	val, ok := store.Get("output.pretty")
	assert.True(t, ok)
	assert.Equal(t, true, val)
	assert.Contains(t, buf.String(), "ignoring unknown settings")
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("output.pretty", true))
	require.NoError(t, store.Set("watch.rate", 25))
	require.NoError(t, store.Set("watch.extensions", []string{".edi", ".x12"}))
	require.NoError(t, store.Set("watch.debounce", "1s"))

	val, ok := store.Get("output.pretty")
	assert.True(t, ok)
	assert.Equal(t, true, val)

	val, _ = store.Get("watch.rate")
	assert.Equal(t, 25, val)

	val, _ = store.Get("watch.extensions")
	assert.Equal(t, []string{".edi", ".x12"}, val)

	val, _ = store.Get("watch.debounce")
	assert.Equal(t, "1s", val)

	_, ok = store.Get("history.limit")
	assert.False(t, ok)

	_, ok = store.Get("nonexistent")
	assert.False(t, ok)
}

func TestConfigStore_SetRejectsUnknownKey(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	err = store.Set("output.colour", "red")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.NoFileExists(t, store.Path())
}

func TestConfigStore_SetRejectsWrongType(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	err = store.Set("watch.rate", "25")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, ok := store.Get("watch.rate")
	assert.False(t, ok)
}

func TestConfigStore_EmptyExtensionsAreSet(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("watch.extensions", []string{}))

	reopened, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	val, ok := reopened.Get("watch.extensions")
	assert.True(t, ok)
	assert.Empty(t, val)
}

func TestConfigStore_PersistsTables(t *testing.T) {
	tmpDir := t.TempDir()

	store1, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store1.Set("output.pretty", true))
	require.NoError(t, store1.Set("output.segment_newline", false))
	require.NoError(t, store1.Set("watch.extensions", []string{".edi"}))

	content, err := os.ReadFile(store1.Path())
	require.NoError(t, err)
	assert.Contains(t, string(content), "[output]")
	assert.Contains(t, string(content), "segment_newline = false")
	assert.Contains(t, string(content), "[watch]")

	store2, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	val, _ := store2.Get("output.segment_newline")
	assert.Equal(t, false, val)
	assert.Equal(t, []string{"output.pretty", "output.segment_newline", "watch.extensions"}, store2.Keys())
}

func TestConfigStore_LoadsHandWrittenFile(t *testing.T) {
	tmpDir := t.TempDir()
	content := "[history]\nenabled = false\nlimit = 5\n\n[watch]\nrate = 3\ndebounce = \"2s\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	val, ok := store.Get("history.enabled")
	assert.True(t, ok)
	assert.Equal(t, false, val)

	val, _ = store.Get("history.limit")
	assert.Equal(t, 5, val)

	val, _ = store.Get("watch.debounce")
	assert.Equal(t, "2s", val)
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("history.limit", 10))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_Set_WriteFileError(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("history.limit", 10))

	// Replace the file with a directory to cause write error
	require.NoError(t, os.Remove(store.Path()))
	require.NoError(t, os.Mkdir(store.Path(), 0700))

	err = store.Set("history.enabled", false)
	assert.Error(t, err)
}

func TestConfigStore_Concurrency(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func(n int) {
			_ = store.Set("watch.rate", n+1)
			_, _ = store.Get("watch.rate")
			_ = store.Keys()
			done <- true
		}(i)
	}

	for i := 0; i < 10; i++ {
		<-done
	}

	assert.Equal(t, []string{"watch.rate"}, store.Keys())
}
