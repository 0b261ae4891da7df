package x12

import (
	"fmt"
	"strconv"
)

// Elements holds element values keyed by their two-digit position.
type Elements map[string]string

// Segment is a body segment inside a transaction set.
type Segment struct {
	Tag      string   `json:"tag"`
	Elements Elements `json:"elements"`
}

// TransactionSet is an ST/SE enclosed message.
type TransactionSet struct {
	ST   Elements  `json:"st"`
	Body []Segment `json:"body"`
	SE   Elements  `json:"se"`
}

// FunctionalGroup is a GS/GE enclosed group of transaction sets.
type FunctionalGroup struct {
	GS       Elements         `json:"gs"`
	Segments []TransactionSet `json:"segments"`
	GE       Elements         `json:"ge"`
}

// Transmission is a complete ISA/IEA interchange.
type Transmission struct {
	ISA              Elements          `json:"isa"`
	FunctionalGroups []FunctionalGroup `json:"functional_group"`
	IEA              Elements          `json:"iea"`
}

// position returns the key for element position i (1-based).
func position(i int) string {
	return fmt.Sprintf("%02d", i)
}

// newElements keys values by position, starting at "01".
func newElements(values []string) Elements {
	e := make(Elements, len(values))
	for i, v := range values {
		e[position(i+1)] = v
	}
	return e
}

// maxPosition is the highest element position a segment may carry.
const maxPosition = 99

// Values returns the element values in positional order. Gaps are
// filled with empty values. Keys must be canonical two-digit positions
// between 01 and 99.
func (e Elements) Values() ([]string, error) {
	last := 0
	for k := range e {
		n, err := strconv.Atoi(k)
		if err != nil || n < 1 || n > maxPosition || position(n) != k {
			return nil, fmt.Errorf("%w %q", ErrElementPosition, k)
		}
		last = max(last, n)
	}

	values := make([]string, last)
	for k, v := range e {
		n, _ := strconv.Atoi(k)
		values[n-1] = v
	}
	return values, nil
}

// Get returns the value at position i (1-based).
func (e Elements) Get(i int) string {
	return e[position(i)]
}
