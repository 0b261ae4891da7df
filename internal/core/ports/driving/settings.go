package driving

import "github.com/custodia-labs/edi-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Set parses value for a known key and persists it.
	Set(key, value string) error

	// Keys returns the settable configuration keys.
	Keys() []string

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
