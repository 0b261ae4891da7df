package envelope

import (
	"strings"
	"unicode/utf8"
)

// Line breaks are stripped from both ends of every segment. Spaces are
// stripped only before the tag so trailing element padding survives.
const (
	segmentLead  = "\r\n "
	segmentTrail = "\r\n"
)

// Segment is one terminator-delimited segment of an interchange.
type Segment struct {
	raw    string
	delims Delimiters
}

// Tokenize splits text into segments on the segment terminator, honouring
// the release character. Empty segments are dropped.
func Tokenize(text string, d Delimiters) []Segment {
	var segments []Segment

	start := 0
	escaped := false
	for i, r := range text {
		switch {
		case escaped:
			escaped = false
		case d.Release != 0 && r == d.Release:
			escaped = true
		case r == d.Segment:
			segments = appendSegment(segments, text[start:i], d)
			start = i + utf8.RuneLen(r)
		}
	}
	return appendSegment(segments, text[start:], d)
}

func appendSegment(segments []Segment, raw string, d Delimiters) []Segment {
	raw = strings.TrimRight(strings.TrimLeft(raw, segmentLead), segmentTrail)
	if raw == "" {
		return segments
	}
	return append(segments, Segment{raw: raw, delims: d})
}

// String returns the raw segment text without its terminator.
func (s Segment) String() string {
	return s.raw
}

// Tag returns the segment identifier, e.g. "GS" or "UNH".
func (s Segment) Tag() string {
	return s.Elements()[0]
}

// Elements splits the segment on the element separator. Position 0 is the tag.
func (s Segment) Elements() []string {
	return s.split(func(r rune) bool { return r == s.delims.Element })
}

// Element returns the element at position i and whether it exists.
func (s Segment) Element(i int) (string, bool) {
	elements := s.Elements()
	if i < 0 || i >= len(elements) {
		return "", false
	}
	return elements[i], true
}

// Flatten splits the segment on both the element and the component separator,
// treated as equally significant split points, in textual order.
func (s Segment) Flatten() []string {
	return s.split(func(r rune) bool {
		return r == s.delims.Element || r == s.delims.Component
	})
}

func (s Segment) split(isSep func(rune) bool) []string {
	var parts []string
	var cur strings.Builder

	escaped := false
	for _, r := range s.raw {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case s.delims.Release != 0 && r == s.delims.Release:
			escaped = true
		case isSep(r):
			parts = append(parts, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	return append(parts, cur.String())
}

// findSegment returns the first segment carrying tag.
func findSegment(segments []Segment, tag string) (Segment, bool) {
	for _, seg := range segments {
		if seg.Tag() == tag {
			return seg, true
		}
	}
	return Segment{}, false
}
