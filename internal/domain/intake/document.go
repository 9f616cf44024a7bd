// Package intake models the ROMA intake document: a loosely structured JSON
// blob produced by an external research flow and pasted into the system.
// Everything in this package is total over arbitrary document shapes; a
// missing or malformed path is "not found", never an error.
package intake

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Document is the parsed intake JSON. The same logical field can appear
// under different paths and shapes across captures, so access goes through
// prioritized path lookups rather than a fixed schema.
type Document map[string]any

// ParseDocument parses raw intake JSON. The top level must be an object.
func ParseDocument(raw []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("invalid intake document: %w", err)
	}
	return doc, nil
}

// Lookup resolves a dot-separated path. Numeric segments index into arrays.
// Any traversal failure returns (nil, false).
func (d Document) Lookup(path string) (any, bool) {
	var current any = map[string]any(d)
	for _, seg := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			next, ok := node[seg]
			if !ok {
				return nil, false
			}
			current = next
		case []any:
			idx, err := strconv.Atoi(seg)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, false
			}
			current = node[idx]
		default:
			return nil, false
		}
	}
	return current, true
}

// StringAt resolves a path to a non-empty string. Non-string leaves are
// not coerced.
func (d Document) StringAt(path string) (string, bool) {
	v, ok := d.Lookup(path)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// ObjectAt resolves a path to a JSON object.
func (d Document) ObjectAt(path string) (map[string]any, bool) {
	v, ok := d.Lookup(path)
	if !ok {
		return nil, false
	}
	obj, ok := v.(map[string]any)
	return obj, ok
}

// ArrayAt resolves a path to a JSON array.
func (d Document) ArrayAt(path string) ([]any, bool) {
	v, ok := d.Lookup(path)
	if !ok {
		return nil, false
	}
	arr, ok := v.([]any)
	return arr, ok
}
