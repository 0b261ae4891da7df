package domain

// RoutingKey identifies the structural codec for a document.
// Two keys are equal iff all three fields match exactly; no
// normalisation is applied, so RoutingKey is usable as a map key.
type RoutingKey struct {
	// Dialect is the EDI family the key belongs to.
	Dialect Dialect

	// Version is the protocol version, e.g. "004010" or "D00B".
	Version string

	// MessageType is the transaction set or message type, e.g. "310" or "IFTSTA".
	MessageType string
}

// NewRoutingKey creates a routing key.
func NewRoutingKey(dialect Dialect, version, messageType string) RoutingKey {
	return RoutingKey{Dialect: dialect, Version: version, MessageType: messageType}
}

// String returns the "version/type" form printed by the type command.
func (k RoutingKey) String() string {
	return k.Version + "/" + k.MessageType
}

// Qualified returns the key prefixed with its dialect, e.g. "X12 004010/310".
func (k RoutingKey) Qualified() string {
	return k.Dialect.String() + " " + k.String()
}

// IsZero reports whether the key carries no version and no message type.
func (k RoutingKey) IsZero() bool {
	return k.Version == "" && k.MessageType == ""
}
