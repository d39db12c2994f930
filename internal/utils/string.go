package utils

import (
	"strings"
	"unicode"
)

// CollapseWhitespace flattens all whitespace runs to a single space and
// trims the result.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SanitizeUTF8 replaces invalid byte sequences with U+FFFD so decoded
// payloads are always safe to serialize.
func SanitizeUTF8(s string) string {
	return strings.ToValidUTF8(s, string(unicode.ReplacementChar))
}

// Capitalize upper-cases the first letter of s, leaving the rest intact.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
