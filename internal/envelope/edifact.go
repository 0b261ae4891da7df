package envelope

import (
	"fmt"

	"github.com/custodia-labs/edi-cli/internal/core/domain"
)

// Positions in the flattened UNH segment:
// UNH + reference + type : version : release : agency.
const (
	unhTypePosition    = 2
	unhVersionPosition = 3
	unhReleasePosition = 4
)

// ExtractEdifact returns the routing key of an EDIFACT interchange from the
// first UNH segment. The version is the format letter and release joined,
// e.g. "D" and "00B" give "D00B".
func ExtractEdifact(text string) (domain.RoutingKey, error) {
	delims := ResolveEdifactDelimiters(text)
	segments := Tokenize(StripServiceAdvice(text), delims)

	unh, ok := findSegment(segments, tagUNH)
	if !ok {
		return domain.RoutingKey{}, &domain.HeaderError{Kind: domain.MissingMessageHeader}
	}

	parts := unh.Flatten()
	if len(parts) <= unhReleasePosition {
		return domain.RoutingKey{}, &domain.HeaderError{
			Kind:   domain.MissingMessageHeader,
			Detail: fmt.Sprintf("UNH has %d parts, need %d", len(parts), unhReleasePosition+1),
		}
	}

	messageType := parts[unhTypePosition]
	if messageType == "" {
		return domain.RoutingKey{}, &domain.HeaderError{
			Kind:   domain.MissingMessageHeader,
			Detail: "UNH message type is empty",
		}
	}

	version := parts[unhVersionPosition] + parts[unhReleasePosition]
	return domain.NewRoutingKey(domain.DialectEdifact, version, messageType), nil
}
