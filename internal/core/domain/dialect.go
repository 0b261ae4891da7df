package domain

// Dialect is the top-level EDI family of a document.
type Dialect string

// Known dialects.
const (
	// DialectX12 is the ASC X12 family (ISA/GS/ST envelopes).
	DialectX12 Dialect = "X12"

	// DialectEdifact is the UN/EDIFACT family (UNA/UNB/UNH envelopes).
	DialectEdifact Dialect = "EDIFACT"

	// DialectUnknown is reported when no leading marker is recognised.
	DialectUnknown Dialect = "UNKNOWN"
)

// String returns the dialect name as printed by the encoding command.
func (d Dialect) String() string {
	if d == "" {
		return string(DialectUnknown)
	}
	return string(d)
}

// IsKnown returns true for X12 and EDIFACT.
func (d Dialect) IsKnown() bool {
	return d == DialectX12 || d == DialectEdifact
}
