package envelope

import "github.com/custodia-labs/edi-cli/internal/core/domain"

// extractors maps a dialect to its header extractor.
var extractors = map[domain.Dialect]func(string) (domain.RoutingKey, error){
	domain.DialectX12:     ExtractX12,
	domain.DialectEdifact: ExtractEdifact,
}

// Extract returns the routing key of text for an already classified dialect.
// DialectUnknown yields domain.ErrDialectUnknown.
func Extract(dialect domain.Dialect, text string) (domain.RoutingKey, error) {
	extract, ok := extractors[dialect]
	if !ok {
		return domain.RoutingKey{}, domain.ErrDialectUnknown
	}
	return extract(text)
}
