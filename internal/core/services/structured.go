package services

import (
	"encoding/json"
	"fmt"

	"github.com/custodia-labs/edi-cli/internal/core/domain"
)

// Probe points inside a structured value.
const (
	fieldInterchange     = "isa"
	fieldFunctionalGroup = "functional_group"
	fieldGroupHeader     = "gs"
	fieldSegments        = "segments"
	fieldSetHeader       = "st"
	elementVersion       = "08"
	elementMessageType   = "01"
)

// edifactFields mark a structured value as EDIFACT-shaped.
var edifactFields = []string{"una", "unb", "unh"}

// probeRoutingKey recovers the routing key carried by a structured value.
// The interchange header field marks an X12 value; the version is read from
// the first functional group header and the message type from the first
// transaction set header. EDIFACT-shaped values yield *domain.NotSupportedError.
func probeRoutingKey(value domain.StructuredValue) (domain.RoutingKey, error) {
	var root map[string]any
	if err := json.Unmarshal(value, &root); err != nil {
		return domain.RoutingKey{}, &domain.StructuredShapeError{Path: "top-level object", Err: err}
	}

	if _, ok := root[fieldInterchange]; !ok {
		for _, f := range edifactFields {
			if _, ok := root[f]; ok {
				return domain.RoutingKey{}, &domain.NotSupportedError{
					Direction: domain.DirectionToDocument,
					Dialect:   domain.DialectEdifact,
				}
			}
		}
		return domain.RoutingKey{}, &domain.StructuredShapeError{Path: fieldInterchange}
	}

	group, err := firstObject(root, fieldFunctionalGroup)
	if err != nil {
		return domain.RoutingKey{}, err
	}

	gs, err := object(group, fieldGroupHeader, fieldFunctionalGroup+"[0]."+fieldGroupHeader)
	if err != nil {
		return domain.RoutingKey{}, err
	}
	version, err := element(gs, elementVersion, fieldFunctionalGroup+"[0]."+fieldGroupHeader)
	if err != nil {
		return domain.RoutingKey{}, err
	}

	set, err := firstObject(group, fieldSegments)
	if err != nil {
		return domain.RoutingKey{}, err
	}
	st, err := object(set, fieldSetHeader, fieldFunctionalGroup+"[0]."+fieldSegments+"[0]."+fieldSetHeader)
	if err != nil {
		return domain.RoutingKey{}, err
	}
	messageType, err := element(st, elementMessageType, fieldFunctionalGroup+"[0]."+fieldSegments+"[0]."+fieldSetHeader)
	if err != nil {
		return domain.RoutingKey{}, err
	}

	return domain.NewRoutingKey(domain.DialectX12, version, messageType), nil
}

// firstObject returns the first element of the array stored under field.
func firstObject(parent map[string]any, field string) (map[string]any, error) {
	items, ok := parent[field].([]any)
	if !ok || len(items) == 0 {
		return nil, &domain.StructuredShapeError{Path: field + "[0]"}
	}
	obj, ok := items[0].(map[string]any)
	if !ok {
		return nil, &domain.StructuredShapeError{
			Path: field + "[0]",
			Err:  fmt.Errorf("expected an object, got %T", items[0]),
		}
	}
	return obj, nil
}

func object(parent map[string]any, field, path string) (map[string]any, error) {
	obj, ok := parent[field].(map[string]any)
	if !ok {
		return nil, &domain.StructuredShapeError{Path: path}
	}
	return obj, nil
}

func element(obj map[string]any, pos, path string) (string, error) {
	s, ok := obj[pos].(string)
	if !ok || s == "" {
		return "", &domain.StructuredShapeError{Path: path + "." + pos}
	}
	return s, nil
}
