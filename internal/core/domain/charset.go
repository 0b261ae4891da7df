package domain

// Charset names the byte encoding an input was decoded with.
type Charset string

const (
	// CharsetUTF8 means the input was valid UTF-8 and returned unchanged.
	CharsetUTF8 Charset = "utf-8"

	// CharsetLatin means the input was decoded with the ISO-8859-16 fallback.
	CharsetLatin Charset = "iso-8859-16"

	// CharsetLatinLossy means the fallback had to substitute byte sequences.
	CharsetLatinLossy Charset = "iso-8859-16-lossy"
)

// DecodeAdvisory is the diagnostic emitted when decoding was lossy.
const DecodeAdvisory = "input is neither UTF-8 nor clean ISO-8859-16; proceeding with the ISO-8859-16 interpretation"

// DecodedText is text recovered from raw input bytes.
type DecodedText struct {
	// Text is the decoded document. It is never mutated after decoding.
	Text string

	// Charset is the encoding that produced Text.
	Charset Charset
}

// Lossy reports whether the decode substituted invalid sequences.
func (d DecodedText) Lossy() bool {
	return d.Charset == CharsetLatinLossy
}
