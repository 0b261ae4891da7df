package driven

import (
	"time"

	"github.com/custodia-labs/edi-cli/internal/core/domain"
)

// ConversionMetrics observes dispatcher outcomes.
type ConversionMetrics interface {
	// ObserveConversion records one terminal invocation.
	ObserveConversion(cmd domain.Command, dialect domain.Dialect, success bool, elapsed time.Duration)
}
