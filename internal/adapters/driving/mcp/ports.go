package mcp

import (
	"github.com/custodia-labs/edi-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
type Ports struct {
	// Conversion runs the dispatcher commands.
	Conversion driving.ConversionService

	// Catalog lists the supported routing keys.
	Catalog driving.CapabilityCatalog

	// History exposes recorded conversions. Optional.
	History driving.HistoryService

	// Version is reported to clients. Defaults to "dev".
	Version string
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Conversion == nil {
		return ErrMissingConversionService
	}
	if p.Catalog == nil {
		return ErrMissingCatalog
	}
	return nil
}
