// Package tui provides an interactive terminal inspector for EDI documents
// and the conversion history. It is a driving adapter like the CLI.
package tui

import (
	"github.com/custodia-labs/edi-cli/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the TUI.
type Ports struct {
	// Conversion classifies inspected files.
	Conversion driving.ConversionService

	// Catalog reports whether an inspected key converts. Optional.
	Catalog driving.CapabilityCatalog

	// History lists recorded conversions. Optional.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Conversion == nil {
		return ErrMissingConversionService
	}
	return nil
}
