package scan

import "strconv"

// IsValidUint reports whether s is a plain base-10 unsigned integer:
// non-empty and consisting of decimal digits only. No sign, no
// surrounding whitespace, no hex or octal prefixes. This is stricter
// than strconv's general parsing on purpose.
func IsValidUint(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// IsValidNodeID reports whether s is a valid node ID: a valid unsigned
// integer that fits in 32 bits and is not zero. Zero is reserved as
// the unset node ID.
func IsValidNodeID(s string) bool {
	if !IsValidUint(s) {
		return false
	}
	v, err := ParseUint(s)
	return err == nil && v != 0
}

// ParseUint converts a digits-only token to a uint32. Values that do
// not fit in 32 bits are an error, not a wraparound.
func ParseUint(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}
