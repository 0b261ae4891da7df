// Package messages defines Bubbletea message types for the TUI.
package messages

import (
	"github.com/custodia-labs/edi-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewInspect classifies a file typed into the path input.
	ViewInspect ViewType = iota
	// ViewHistory lists recorded conversions.
	ViewHistory
	// ViewRecord shows a single recorded conversion.
	ViewRecord
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewInspect:
		return "inspect"
	case ViewHistory:
		return "history"
	case ViewRecord:
		return "record"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// Report describes an inspected file.
type Report struct {
	// Path is the inspected file.
	Path string

	// Dialect is the classified dialect.
	Dialect domain.Dialect

	// Key is the routing key; zero when extraction failed.
	Key domain.RoutingKey

	// Supported is true when the key has a registered capability.
	Supported bool

	// Err is the extraction failure, if any.
	Err error
}

// InspectCompleted carries an inspection back to the model.
type InspectCompleted struct {
	Report Report
}

// HistoryLoaded carries recorded conversions back to the model.
type HistoryLoaded struct {
	Records []domain.ConversionRecord
	Err     error
}

// RecordSelected is sent when a history entry is opened.
type RecordSelected struct {
	Record domain.ConversionRecord
}

// ErrorOccurred reports an error to display.
type ErrorOccurred struct {
	Err error
}

// Quit requests application exit.
type Quit struct{}
