package driven

import "github.com/custodia-labs/edi-cli/internal/core/domain"

// TextDecoder recovers text from bytes of unknown encoding.
// Decode is total: it never fails and always returns text.
type TextDecoder interface {
	Decode(data []byte) domain.DecodedText
}
