// Package extract pulls structured fields out of free-form model output.
//
// Model replies are not guaranteed to be JSON. Every helper here answers
// with an empty, non-nil result when the text cannot be read, and never
// returns an error.
package extract

import (
	"encoding/json"
	"regexp"
)

// objectPattern spans from the first '{' to the last '}'.
var objectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// Object returns the widest brace-delimited span of raw decoded as a JSON
// object.
func Object(raw string) (map[string]json.RawMessage, bool) {
	span := objectPattern.FindString(raw)
	if span == "" {
		return nil, false
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(span), &obj); err != nil || obj == nil {
		return nil, false
	}
	return obj, true
}

// Field returns the elements of the array stored under field.
func Field(raw, field string) []json.RawMessage {
	return FieldAs[json.RawMessage](raw, field)
}

// FieldAs decodes the array stored under field into []T.
func FieldAs[T any](raw, field string) []T {
	out := []T{}
	obj, ok := Object(raw)
	if !ok {
		return out
	}
	val, ok := obj[field]
	if !ok {
		return out
	}
	var items []T
	if err := json.Unmarshal(val, &items); err != nil || items == nil {
		return out
	}
	return items
}
