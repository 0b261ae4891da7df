package x12

import "errors"

var (
	// ErrMissingInterchange indicates the document does not open with ISA.
	ErrMissingInterchange = errors.New("x12: document does not start with an ISA segment")

	// ErrUnbalanced indicates an envelope header without its trailer or vice versa.
	ErrUnbalanced = errors.New("x12: unbalanced envelope")

	// ErrKeyMismatch indicates the interchange carries a different version or type.
	ErrKeyMismatch = errors.New("x12: routing key mismatch")

	// ErrEmptyInterchange indicates an interchange without transaction sets.
	ErrEmptyInterchange = errors.New("x12: interchange carries no transaction set")

	// ErrElementPosition indicates an element key that is not a position from 01 to 99.
	ErrElementPosition = errors.New("x12: invalid element position")
)
