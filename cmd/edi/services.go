package main

import (
	"path/filepath"

	"github.com/custodia-labs/edi-cli/internal/adapters/driven/charset"
	"github.com/custodia-labs/edi-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/edi-cli/internal/adapters/driven/metrics"
	"github.com/custodia-labs/edi-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/edi-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/edi-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/edi-cli/internal/codecs"
	"github.com/custodia-labs/edi-cli/internal/codecs/x12"
	"github.com/custodia-labs/edi-cli/internal/core/ports/driven"
	"github.com/custodia-labs/edi-cli/internal/core/services"
	"github.com/custodia-labs/edi-cli/internal/logger"
)

// buildServices wires the driven adapters into the core services.
// An unreadable config file or history database degrades to in-memory
// stores with a warning instead of failing the command.
func buildServices(configDir string) (*cli.Services, error) {
	var configStore driven.ConfigStore
	fileStore, err := file.NewConfigStore(configDir)
	if err != nil {
		logger.Notice("config unavailable, using defaults: %v", err)
		configStore = memory.NewConfigStore()
	} else {
		configStore = fileStore
		logger.Debug("config: %s", fileStore.Path())
	}

	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, err
	}

	registry, err := services.NewCapabilityRegistry(codecs.Builtin(x12.Options{
		SegmentNewline: settings.Output.SegmentNewline,
	}))
	if err != nil {
		return nil, err
	}

	conversion := services.NewConversionService(charset.NewDecoder(), registry)
	conversion.SetOutputSettings(settings.Output)

	m := metrics.New()
	conversion.SetMetrics(m)

	var historyStore driven.HistoryStore
	closeFn := func() error { return nil }

	if settings.History.Enabled {
		store, err := sqlite.NewStore(dataDir(configDir))
		if err != nil {
			logger.Warn("history database unavailable, keeping history in memory: %v", err)
			historyStore = memory.NewHistoryStore()
		} else {
			logger.Debug("history: %s", store.Path())
			historyStore = store.HistoryStore()
			closeFn = store.Close
		}
		conversion.SetHistoryStore(historyStore)
	}

	return &cli.Services{
		Conversion:     conversion,
		Catalog:        registry,
		History:        services.NewHistoryService(historyStore),
		Settings:       settingsService,
		MetricsHandler: m.Handler(),
		Close:          closeFn,
	}, nil
}

// dataDir returns the history database directory for configDir.
// An empty configDir selects the store default.
func dataDir(configDir string) string {
	if configDir == "" {
		return ""
	}
	return filepath.Join(configDir, "data")
}
