package param

import (
	"net/url"
	"strings"
)

// ParseBool reports whether raw is "true", ignoring case. Any other value is false.
func ParseBool(raw string) bool {
	return strings.EqualFold(raw, "true")
}

// Bool reads a boolean query parameter. The default applies only when the key is
// absent; a present but empty value parses as false.
func Bool(values url.Values, key string, defaultValue bool) bool {
	if !values.Has(key) {
		return defaultValue
	}
	return ParseBool(values.Get(key))
}

// String reads a query parameter, falling back to defaultValue when the key is absent.
func String(values url.Values, key, defaultValue string) string {
	if !values.Has(key) {
		return defaultValue
	}
	return values.Get(key)
}
