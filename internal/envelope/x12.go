package envelope

import (
	"fmt"

	"github.com/custodia-labs/edi-cli/internal/core/domain"
)

const (
	// gsVersionPosition is GS08, the version/release/industry identifier.
	gsVersionPosition = 8

	// stTypePosition is ST01, the transaction set identifier code.
	stTypePosition = 1
)

// ExtractX12 returns the routing key of an X12 interchange. The version is
// GS08 of the first GS segment and the message type is ST01 of the first
// ST segment; both are located independently.
func ExtractX12(text string) (domain.RoutingKey, error) {
	segments := Tokenize(text, ResolveX12Delimiters(text))

	version, err := headerElement(segments, tagGS, gsVersionPosition, domain.MissingGroupHeader)
	if err != nil {
		return domain.RoutingKey{}, err
	}

	messageType, err := headerElement(segments, tagST, stTypePosition, domain.MissingTransactionHeader)
	if err != nil {
		return domain.RoutingKey{}, err
	}

	return domain.NewRoutingKey(domain.DialectX12, version, messageType), nil
}

func headerElement(segments []Segment, tag string, pos int, kind domain.HeaderKind) (string, error) {
	seg, ok := findSegment(segments, tag)
	if !ok {
		return "", &domain.HeaderError{Kind: kind}
	}

	value, ok := seg.Element(pos)
	if !ok {
		return "", &domain.HeaderError{
			Kind:   kind,
			Detail: fmt.Sprintf("%s has %d elements, need element %d", tag, len(seg.Elements())-1, pos),
		}
	}
	if value == "" {
		return "", &domain.HeaderError{Kind: kind, Detail: fmt.Sprintf("%s%02d is empty", tag, pos)}
	}
	return value, nil
}
