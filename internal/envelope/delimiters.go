package envelope

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Delimiters are the separator characters of an interchange.
type Delimiters struct {
	// Element separates data elements within a segment.
	Element rune

	// Component separates components within a composite element.
	Component rune

	// Segment terminates a segment.
	Segment rune

	// Release escapes the following character. Zero means none.
	Release rune
}

const (
	// isaElementCount is the number of data elements in an ISA segment.
	isaElementCount = 16

	// unaLength is "UNA" followed by six service characters.
	unaLength = 9
)

// X12Delimiters returns the standard X12 delimiters.
func X12Delimiters() Delimiters {
	return Delimiters{Element: '*', Component: '>', Segment: '~'}
}

// EdifactDelimiters returns the UN/EDIFACT default service characters.
func EdifactDelimiters() Delimiters {
	return Delimiters{Element: '+', Component: ':', Segment: '\'', Release: '?'}
}

// ResolveX12Delimiters reads the delimiters declared by a leading ISA segment.
// The element separator is the character after "ISA"; ISA16 holds the
// component separator and the character after it terminates the segment.
// Text without a complete ISA yields the standard delimiters.
func ResolveX12Delimiters(text string) Delimiters {
	d := X12Delimiters()
	if !strings.HasPrefix(text, MarkerISA) {
		return d
	}

	elem, size := utf8.DecodeRuneInString(text[len(MarkerISA):])
	if !isServiceChar(elem) {
		return d
	}

	offset := len(MarkerISA)
	for n := 0; n < isaElementCount; n++ {
		i := strings.IndexRune(text[offset:], elem)
		if i < 0 {
			return d
		}
		offset += i + size
	}

	comp, n := utf8.DecodeRuneInString(text[offset:])
	term, _ := utf8.DecodeRuneInString(text[offset+n:])
	if !isServiceChar(comp) || !isServiceChar(term) || !distinct(elem, comp, term) {
		return d
	}

	return Delimiters{Element: elem, Component: comp, Segment: term}
}

// ResolveEdifactDelimiters reads the service string advice (UNA) when the
// text opens with one. The six characters after "UNA" are, in order: the
// component separator, element separator, decimal mark, release character,
// a reserved position and the segment terminator. A space in the release
// position means no release character. Text without a usable UNA yields
// the default service characters.
func ResolveEdifactDelimiters(text string) Delimiters {
	d := EdifactDelimiters()
	if !strings.HasPrefix(text, MarkerUNA) {
		return d
	}

	chars := make([]rune, 0, unaLength-len(MarkerUNA))
	for _, r := range text[len(MarkerUNA):] {
		if len(chars) == cap(chars) {
			break
		}
		chars = append(chars, r)
	}
	if len(chars) < cap(chars) {
		return d
	}

	resolved := Delimiters{
		Component: chars[0],
		Element:   chars[1],
		Release:   chars[3],
		Segment:   chars[5],
	}
	if resolved.Release == ' ' {
		resolved.Release = 0
	}
	if !distinct(resolved.Component, resolved.Element, resolved.Segment) {
		return d
	}
	return resolved
}

// StripServiceAdvice returns text without a leading UNA segment.
func StripServiceAdvice(text string) string {
	if !strings.HasPrefix(text, MarkerUNA) {
		return text
	}
	n := 0
	for i := range text {
		if n == unaLength {
			return text[i:]
		}
		n++
	}
	return ""
}

func isServiceChar(r rune) bool {
	return r != utf8.RuneError && !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != ' '
}

func distinct(a, b, c rune) bool {
	return a != b && b != c && a != c
}
