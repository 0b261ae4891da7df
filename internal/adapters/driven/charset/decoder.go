// Package charset recovers text from input bytes of unknown encoding.
package charset

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/custodia-labs/edi-cli/internal/core/domain"
	"github.com/custodia-labs/edi-cli/internal/core/ports/driven"
)

// Ensure Decoder implements the interface.
var _ driven.TextDecoder = (*Decoder)(nil)

// Decoder tries strict UTF-8 first and falls back to ISO-8859-16, a
// single-byte Latin encoding that maps every byte to a character.
type Decoder struct {
	fallback *charmap.Charmap
}

// NewDecoder creates a decoder with the ISO-8859-16 fallback.
func NewDecoder() *Decoder {
	return &Decoder{fallback: charmap.ISO8859_16}
}

// Decode returns data as text. Valid UTF-8 is returned unchanged.
func (d *Decoder) Decode(data []byte) domain.DecodedText {
	if utf8.Valid(data) {
		return domain.DecodedText{Text: string(data), Charset: domain.CharsetUTF8}
	}

	text, err := d.fallback.NewDecoder().String(string(data))
	if err != nil {
		text = d.decodeBytes(data)
	}

	charset := domain.CharsetLatin
	if strings.ContainsRune(text, utf8.RuneError) {
		charset = domain.CharsetLatinLossy
	}
	return domain.DecodedText{Text: text, Charset: charset}
}

// decodeBytes maps byte by byte; it cannot fail.
func (d *Decoder) decodeBytes(data []byte) string {
	var b strings.Builder
	b.Grow(len(data))
	for _, c := range data {
		b.WriteRune(d.fallback.DecodeByte(c))
	}
	return b.String()
}
