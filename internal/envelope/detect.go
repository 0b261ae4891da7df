package envelope

import (
	"strings"

	"github.com/custodia-labs/edi-cli/internal/core/domain"
)

// Leading markers and envelope segment tags.
const (
	MarkerISA = "ISA"
	MarkerUNA = "UNA"
	MarkerUNB = "UNB"

	tagGS  = "GS"
	tagST  = "ST"
	tagUNH = "UNH"
)

// marker maps a leading prefix to the dialect it announces.
type marker struct {
	prefix  string
	dialect domain.Dialect
}

// markers is checked in order; the table is read-only after init.
var markers = []marker{
	{prefix: MarkerISA, dialect: domain.DialectX12},
	{prefix: MarkerUNB, dialect: domain.DialectEdifact},
	{prefix: MarkerUNA, dialect: domain.DialectEdifact},
}

// Detect classifies text by its leading marker. Only the first three
// characters are inspected.
func Detect(text string) domain.Dialect {
	for _, m := range markers {
		if strings.HasPrefix(text, m.prefix) {
			return m.dialect
		}
	}
	return domain.DialectUnknown
}
