package x12

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/custodia-labs/edi-cli/internal/core/domain"
	"github.com/custodia-labs/edi-cli/internal/core/ports/driven"
	"github.com/custodia-labs/edi-cli/internal/envelope"
)

// Ensure Codec implements the interface.
var _ driven.Codec = (*Codec)(nil)

// Envelope segment tags.
const (
	tagISA = "ISA"
	tagIEA = "IEA"
	tagGS  = "GS"
	tagGE  = "GE"
	tagST  = "ST"
	tagSE  = "SE"
)

// Options controls serialization.
type Options struct {
	// SegmentNewline writes a line break after every segment terminator.
	SegmentNewline bool
}

// Codec converts X12 interchanges for one routing key.
type Codec struct {
	key  domain.RoutingKey
	opts Options
}

// New creates a codec bound to key.
func New(key domain.RoutingKey, opts Options) *Codec {
	return &Codec{key: key, opts: opts}
}

// Key returns the routing key the codec is bound to.
func (c *Codec) Key() domain.RoutingKey {
	return c.key
}

// Parse converts an X12 interchange into its structured form.
func (c *Codec) Parse(text string) (domain.StructuredValue, error) {
	t, err := c.decode(text)
	if err != nil {
		return nil, err
	}
	if err := c.check(t); err != nil {
		return nil, err
	}

	data, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("marshalling transmission: %w", err)
	}
	return data, nil
}

// Serialize converts a structured value into X12 text using the standard
// delimiters.
func (c *Codec) Serialize(value domain.StructuredValue) (string, error) {
	var t Transmission
	if err := json.Unmarshal(value, &t); err != nil {
		return "", fmt.Errorf("unmarshalling transmission: %w", err)
	}
	if t.ISA == nil {
		return "", ErrMissingInterchange
	}
	if err := c.check(&t); err != nil {
		return "", err
	}

	w := &writer{delims: envelope.X12Delimiters(), newline: c.opts.SegmentNewline}
	if err := w.write(tagISA, t.ISA); err != nil {
		return "", err
	}
	for _, fg := range t.FunctionalGroups {
		if err := w.write(tagGS, fg.GS); err != nil {
			return "", err
		}
		for _, ts := range fg.Segments {
			if err := w.write(tagST, ts.ST); err != nil {
				return "", err
			}
			for _, seg := range ts.Body {
				if err := w.write(seg.Tag, seg.Elements); err != nil {
					return "", err
				}
			}
			if err := w.write(tagSE, ts.SE); err != nil {
				return "", err
			}
		}
		if err := w.write(tagGE, fg.GE); err != nil {
			return "", err
		}
	}
	if err := w.write(tagIEA, t.IEA); err != nil {
		return "", err
	}
	return w.String(), nil
}

// decode builds a Transmission from the envelope structure of text.
func (c *Codec) decode(text string) (*Transmission, error) {
	segments := envelope.Tokenize(text, envelope.ResolveX12Delimiters(text))
	if len(segments) == 0 || segments[0].Tag() != tagISA {
		return nil, ErrMissingInterchange
	}

	t := &Transmission{ISA: newElements(segments[0].Elements()[1:])}
	var group *FunctionalGroup
	var set *TransactionSet

	for _, seg := range segments[1:] {
		values := seg.Elements()
		tag, elements := values[0], newElements(values[1:])

		switch tag {
		case tagGS:
			if group != nil {
				return nil, fmt.Errorf("%w: GS before GE of previous group", ErrUnbalanced)
			}
			group = &FunctionalGroup{GS: elements}
		case tagST:
			if group == nil || set != nil {
				return nil, fmt.Errorf("%w: ST outside a functional group", ErrUnbalanced)
			}
			set = &TransactionSet{ST: elements, Body: []Segment{}}
		case tagSE:
			if set == nil {
				return nil, fmt.Errorf("%w: SE without ST", ErrUnbalanced)
			}
			set.SE = elements
			group.Segments = append(group.Segments, *set)
			set = nil
		case tagGE:
			if group == nil || set != nil {
				return nil, fmt.Errorf("%w: GE without GS or inside a transaction set", ErrUnbalanced)
			}
			group.GE = elements
			t.FunctionalGroups = append(t.FunctionalGroups, *group)
			group = nil
		case tagIEA:
			if group != nil {
				return nil, fmt.Errorf("%w: IEA inside a functional group", ErrUnbalanced)
			}
			t.IEA = elements
		default:
			if set == nil {
				return nil, fmt.Errorf("%w: %s segment outside a transaction set", ErrUnbalanced, tag)
			}
			set.Body = append(set.Body, Segment{Tag: tag, Elements: elements})
		}
	}

	if set != nil || group != nil {
		return nil, fmt.Errorf("%w: interchange ends inside a functional group", ErrUnbalanced)
	}
	if t.IEA == nil {
		return nil, fmt.Errorf("%w: missing IEA trailer", ErrUnbalanced)
	}
	return t, nil
}

// check verifies every group and transaction set carries the codec's key.
func (c *Codec) check(t *Transmission) error {
	sets := 0
	for _, fg := range t.FunctionalGroups {
		if v := fg.GS.Get(8); v != c.key.Version {
			return fmt.Errorf("%w: GS08 %q, expected %q", ErrKeyMismatch, v, c.key.Version)
		}
		for _, ts := range fg.Segments {
			if v := ts.ST.Get(1); v != c.key.MessageType {
				return fmt.Errorf("%w: ST01 %q, expected %q", ErrKeyMismatch, v, c.key.MessageType)
			}
			sets++
		}
	}
	if sets == 0 {
		return ErrEmptyInterchange
	}
	return nil
}

// writer emits segments with fixed delimiters.
type writer struct {
	b       strings.Builder
	delims  envelope.Delimiters
	newline bool
}

func (w *writer) write(tag string, elements Elements) error {
	if tag == "" {
		return fmt.Errorf("x12: segment without tag")
	}
	values, err := elements.Values()
	if err != nil {
		return fmt.Errorf("%s: %w", tag, err)
	}

	w.b.WriteString(tag)
	for _, v := range values {
		w.b.WriteRune(w.delims.Element)
		w.b.WriteString(v)
	}
	w.b.WriteRune(w.delims.Segment)
	if w.newline {
		w.b.WriteByte('\n')
	}
	return nil
}

func (w *writer) String() string {
	return w.b.String()
}
