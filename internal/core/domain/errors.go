package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDialectUnknown indicates the input starts with no recognised marker.
	ErrDialectUnknown = errors.New("cannot convert input, unknown encoding")

	// ErrHeader indicates an envelope header segment could not be located.
	ErrHeader = errors.New("cannot read envelope header")

	// ErrUnsupportedKey indicates no capability is registered for a routing key.
	ErrUnsupportedKey = errors.New("unsupported message type")

	// ErrNotSupported indicates a whole direction is unavailable for a dialect.
	ErrNotSupported = errors.New("not supported")

	// ErrStructuredShape indicates a structured value lacks its routing fields.
	ErrStructuredShape = errors.New("unexpected structured value shape")

	// ErrCodec indicates a capability failed to parse or serialize.
	ErrCodec = errors.New("codec failure")
)

// HeaderKind identifies which envelope anchor was missing.
type HeaderKind int

const (
	// MissingGroupHeader means no usable X12 GS segment was found.
	MissingGroupHeader HeaderKind = iota + 1

	// MissingTransactionHeader means no usable X12 ST segment was found.
	MissingTransactionHeader

	// MissingMessageHeader means no usable EDIFACT UNH segment was found.
	MissingMessageHeader
)

// String returns a human-readable description of the kind.
func (k HeaderKind) String() string {
	switch k {
	case MissingGroupHeader:
		return "missing functional group header (GS)"
	case MissingTransactionHeader:
		return "missing transaction set header (ST)"
	case MissingMessageHeader:
		return "missing message header (UNH)"
	default:
		return "missing header"
	}
}

// HeaderError reports a header extraction failure.
type HeaderError struct {
	Kind HeaderKind

	// Detail is set when the segment exists but is too short.
	Detail string
}

func (e *HeaderError) Error() string {
	if e.Detail == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Detail
}

// Unwrap returns ErrHeader.
func (e *HeaderError) Unwrap() error {
	return ErrHeader
}

// UnsupportedKeyError reports a lookup for a key absent from the registry.
type UnsupportedKeyError struct {
	Key RoutingKey
}

func (e *UnsupportedKeyError) Error() string {
	return fmt.Sprintf("%s type not supported: %s", e.Key.Dialect, e.Key)
}

// Unwrap returns ErrUnsupportedKey.
func (e *UnsupportedKeyError) Unwrap() error {
	return ErrUnsupportedKey
}

// NotSupportedError reports a direction that is unavailable for a whole dialect.
type NotSupportedError struct {
	Direction Direction
	Dialect   Dialect
}

func (e *NotSupportedError) Error() string {
	return fmt.Sprintf("%s conversion is not supported for %s", e.Direction, e.Dialect)
}

// Unwrap returns ErrNotSupported.
func (e *NotSupportedError) Unwrap() error {
	return ErrNotSupported
}

// StructuredShapeError reports a structured value missing a routing field.
type StructuredShapeError struct {
	// Path is the location that was probed, e.g. "functional_group[0].gs.08".
	Path string

	// Err is the underlying cause, if any.
	Err error
}

func (e *StructuredShapeError) Error() string {
	msg := "structured value has no " + e.Path
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns ErrStructuredShape and the underlying cause.
func (e *StructuredShapeError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrStructuredShape}
	}
	return []error{ErrStructuredShape, e.Err}
}

// CodecError reports a capability parse or serialize failure.
type CodecError struct {
	// Op is "parse" or "serialize".
	Op string

	Key RoutingKey
	Err error
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Key.Qualified(), e.Err)
}

// Unwrap returns ErrCodec and the underlying cause.
func (e *CodecError) Unwrap() []error {
	return []error{ErrCodec, e.Err}
}
