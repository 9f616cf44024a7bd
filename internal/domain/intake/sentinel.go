package intake

import "strings"

// Intake documents use the literal "<>" to mean "field intentionally left
// unknown", sometimes behind a scheme prefix ("tel:<>", "mailto:<>").
// All sentinel detection funnels through this file so the convention can
// change in one place.

const unknownSentinel = "<>"

var strippablePrefixes = []string{"tel:", "mailto:"}

// IsSentinel reports whether raw is the unknown sentinel, with or without
// a known prefix.
func IsSentinel(raw string) bool {
	_, ok := CleanValue(raw)
	return !ok && strings.TrimSpace(raw) != ""
}

// CleanValue normalizes a raw document value: whitespace trimmed, known
// prefixes stripped. ok is false when the value is empty or the unknown
// sentinel, in which case the field must be treated as absent, never
// stored as an empty string.
func CleanValue(raw string) (string, bool) {
	v := strings.TrimSpace(raw)
	for _, p := range strippablePrefixes {
		if strings.HasPrefix(strings.ToLower(v), p) {
			v = strings.TrimSpace(v[len(p):])
			break
		}
	}
	if v == "" || v == unknownSentinel {
		return "", false
	}
	return v, true
}
