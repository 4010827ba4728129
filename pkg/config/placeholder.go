package config

import "strings"

var placeholderMarkers = []string{"YOUR_", "_HERE", "CHANGEME", "PLACEHOLDER"}

// IsPlaceholder reports whether a value is empty or one of the obvious
// fill-me-in markers shipped in example configs. Such values are treated
// as "not configured" and skipped, never as errors.
func IsPlaceholder(v string) bool {
	if strings.TrimSpace(v) == "" {
		return true
	}
	upper := strings.ToUpper(v)
	for _, marker := range placeholderMarkers {
		if strings.Contains(upper, marker) {
			return true
		}
	}
	return false
}
