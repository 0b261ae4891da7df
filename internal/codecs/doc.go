// Package codecs holds the structural codecs and the built-in capability
// catalogue.
//
// The catalogue is the single list of supported routing keys. Both
// conversion directions consume it, so a key that parses always
// serializes and vice versa. Adding a message type means adding one
// entry to the catalogue.
package codecs
