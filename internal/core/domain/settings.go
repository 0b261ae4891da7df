package domain

import (
	"strings"
	"time"
)

// AppSettings holds application-wide settings loaded from configuration.
type AppSettings struct {
	Output  OutputSettings
	History HistorySettings
	Watch   WatchSettings
}

// OutputSettings controls how converted documents are written.
type OutputSettings struct {
	// Pretty indents structured values.
	Pretty bool

	// SegmentNewline writes a line break after every segment terminator.
	SegmentNewline bool
}

// HistorySettings controls conversion history recording.
type HistorySettings struct {
	// Enabled turns recording on or off.
	Enabled bool

	// Limit is the default number of records listed.
	Limit int
}

// WatchSettings controls the directory watcher.
type WatchSettings struct {
	// Rate is the maximum number of files processed per second.
	Rate int

	// Extensions lists the file extensions treated as EDI documents.
	Extensions []string

	// Debounce is how long a file must be quiet before it is processed.
	Debounce time.Duration
}

// DefaultAppSettings returns the settings used when nothing is configured.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Output: OutputSettings{
			Pretty:         false,
			SegmentNewline: true,
		},
		History: HistorySettings{
			Enabled: true,
			Limit:   20,
		},
		Watch: WatchSettings{
			Rate:       10,
			Extensions: []string{".edi", ".x12", ".txt"},
			Debounce:   250 * time.Millisecond,
		},
	}
}

// MatchesExtension reports whether name ends with a configured EDI extension.
// Comparison is case-insensitive.
func (w WatchSettings) MatchesExtension(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range w.Extensions {
		if ext != "" && strings.HasSuffix(lower, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}
