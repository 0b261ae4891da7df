package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/edi-cli/internal/core/domain"
	"github.com/custodia-labs/edi-cli/internal/core/ports/driven"
	"github.com/custodia-labs/edi-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyOutputPretty         = "output.pretty"
	keyOutputSegmentNewline = "output.segment_newline"
	keyHistoryEnabled       = "history.enabled"
	keyHistoryLimit         = "history.limit"
	keyWatchRate            = "watch.rate"
	keyWatchExtensions      = "watch.extensions"
	keyWatchDebounce        = "watch.debounce"
)

// valueKind is how a setting's text value is parsed by Set.
type valueKind int

const (
	kindBool valueKind = iota
	kindPositiveInt
	kindList
	kindDuration
)

var settingKinds = map[string]valueKind{
	keyOutputPretty:         kindBool,
	keyOutputSegmentNewline: kindBool,
	keyHistoryEnabled:       kindBool,
	keyHistoryLimit:         kindPositiveInt,
	keyWatchRate:            kindPositiveInt,
	keyWatchExtensions:      kindList,
	keyWatchDebounce:        kindDuration,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings, filling unset or invalid
// values from the defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()
	if s.configStore == nil {
		return &defaults, nil
	}

	settings := &domain.AppSettings{
		Output: domain.OutputSettings{
			Pretty:         s.getBool(keyOutputPretty, defaults.Output.Pretty),
			SegmentNewline: s.getBool(keyOutputSegmentNewline, defaults.Output.SegmentNewline),
		},
		History: domain.HistorySettings{
			Enabled: s.getBool(keyHistoryEnabled, defaults.History.Enabled),
			Limit:   s.getPositiveInt(keyHistoryLimit, defaults.History.Limit),
		},
		Watch: domain.WatchSettings{
			Rate:       s.getPositiveInt(keyWatchRate, defaults.Watch.Rate),
			Extensions: s.getList(keyWatchExtensions, defaults.Watch.Extensions),
			Debounce:   s.getDuration(keyWatchDebounce, defaults.Watch.Debounce),
		},
	}

	return settings, nil
}

// Set parses value for a known key and persists it.
func (s *SettingsService) Set(key, value string) error {
	kind, ok := settingKinds[key]
	if !ok {
		return fmt.Errorf("unknown setting %q: %w", key, domain.ErrInvalidInput)
	}
	if s.configStore == nil {
		return fmt.Errorf("no config store: %w", domain.ErrInvalidInput)
	}

	var parsed any
	switch kind {
	case kindBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s expects true or false: %w", key, domain.ErrInvalidInput)
		}
		parsed = b
	case kindPositiveInt:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("%s expects a positive integer: %w", key, domain.ErrInvalidInput)
		}
		parsed = n
	case kindList:
		parsed = splitList(value)
	case kindDuration:
		d, err := time.ParseDuration(value)
		if err != nil || d < 0 {
			return fmt.Errorf("%s expects a duration such as 250ms: %w", key, domain.ErrInvalidInput)
		}
		parsed = d.String()
	}

	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys returns the settable configuration keys, sorted.
func (s *SettingsService) Keys() []string {
	return []string{
		keyHistoryEnabled,
		keyHistoryLimit,
		keyOutputPretty,
		keyOutputSegmentNewline,
		keyWatchDebounce,
		keyWatchExtensions,
		keyWatchRate,
	}
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (s *SettingsService) getBool(key string, def bool) bool {
	val, _ := s.configStore.Get(key)
	if b, ok := val.(bool); ok {
		return b
	}
	return def
}

func (s *SettingsService) getPositiveInt(key string, def int) int {
	val, _ := s.configStore.Get(key)
	var n int
	switch v := val.(type) {
	case int:
		n = v
	case int64:
		n = int(v)
	}
	if n > 0 {
		return n
	}
	return def
}

// getList accepts []string, or []any from a generic decoder.
func (s *SettingsService) getList(key string, def []string) []string {
	val, _ := s.configStore.Get(key)
	switch v := val.(type) {
	case []string:
		return v
	case []any:
		list := make([]string, 0, len(v))
		for _, item := range v {
			if str, ok := item.(string); ok {
				list = append(list, str)
			}
		}
		return list
	default:
		return def
	}
}

func (s *SettingsService) getDuration(key string, def time.Duration) time.Duration {
	val, _ := s.configStore.Get(key)
	str, ok := val.(string)
	if !ok || str == "" {
		return def
	}
	d, err := time.ParseDuration(str)
	if err != nil || d < 0 {
		return def
	}
	return d
}

// splitList splits a comma-separated value, dropping blanks.
func splitList(value string) []string {
	items := []string{}
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
