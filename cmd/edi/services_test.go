package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/edi-cli/internal/core/domain"
)

const document310 = "ISA*00*          *00*          *ZZ*SOURCE         *02*TARGET         *220101*1449*U*00401*000011566*0*P*>~\n" +
	"GS*IO*SOURCE*TARGET*20220101*1449*61716*X*004010~\n" +
	"ST*310*35353~\n" +
	"B3**ABC123*REF*PP**20220101*1500~\n" +
	"SE*3*35353~\n" +
	"GE*1*61716~\n" +
	"IEA*1*000011566~\n"

func TestBuildServices_RecordsHistory(t *testing.T) {
	dir := t.TempDir()

	svc, err := buildServices(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Close() })

	ctx := context.Background()
	key, err := svc.Conversion.Type(ctx, domain.Input{Name: "-", Content: []byte(document310)})
	require.NoError(t, err)
	assert.Equal(t, "004010/310", key.String())

	records, err := svc.History.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, domain.CommandType, records[0].Command)

	_, err = os.Stat(filepath.Join(dir, "data", "history.db"))
	assert.NoError(t, err)
}

func TestBuildServices_HistoryDisabled(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[history]\nenabled = false\n"), 0600))

	svc, err := buildServices(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Close() })

	ctx := context.Background()
	svc.Conversion.Encoding(ctx, domain.Input{Name: "-", Content: []byte(document310)})

	records, err := svc.History.List(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, records)

	_, err = os.Stat(filepath.Join(dir, "data", "history.db"))
	assert.True(t, os.IsNotExist(err))
}

func TestBuildServices_PrettyOutput(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[output]\npretty = true\n"), 0600))

	svc, err := buildServices(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Close() })

	conv, err := svc.Conversion.ToStructured(context.Background(), domain.Input{Name: "-", Content: []byte(document310)})
	require.NoError(t, err)
	assert.Contains(t, conv.Output, "\n  \"")
}

func TestBuildServices_CatalogIsSymmetric(t *testing.T) {
	svc, err := buildServices(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Close() })

	assert.True(t, svc.Catalog.Supports(domain.NewRoutingKey(domain.DialectX12, "004010", "310")))
	assert.False(t, svc.Catalog.Supports(domain.NewRoutingKey(domain.DialectEdifact, "D00B", "IFTSTA")))
}

func TestDataDir(t *testing.T) {
	assert.Equal(t, "", dataDir(""))
	assert.Equal(t, filepath.Join("cfg", "data"), dataDir("cfg"))
}
