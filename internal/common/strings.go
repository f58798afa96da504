package common

import "strings"

// UnknownStr is the fallback name for enum values without a label.
const UnknownStr = "unknown"

// IsBlank reports whether s is empty after trimming surrounding whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
