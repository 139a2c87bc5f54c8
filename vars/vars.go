package vars

import "strings"

// FirstNonZero returns the first non-zero value, used to layer flag, config file
// and default values.
func FirstNonZero[T comparable](values ...T) T {
	var zero T
	for _, value := range values {
		if value != zero {
			return value
		}
	}
	return zero
}

// StrToBool parses command line booleans; anything unrecognized is false.
func StrToBool(str string) bool {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "true", "t", "yes", "y", "on", "1":
		return true
	}
	return false
}
