// Package validation holds the stateless predicates every entity field is
// checked against before it is assigned.
package validation

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

// MatchesPattern reports whether text fully matches re. A nil pattern never matches.
func MatchesPattern(text string, re *regexp.Regexp) bool {
	if re == nil {
		return false
	}
	return re.MatchString(text)
}

// MatchesPatternString compiles pattern and matches text against it.
// An empty or malformed pattern never matches.
func MatchesPatternString(text, pattern string) bool {
	if pattern == "" {
		return false
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false
	}
	return MatchesPattern(text, re)
}

// LengthBetween checks the trimmed rune count of text against [min, max].
func LengthBetween(text string, min, max int) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(text))
	return n >= min && n <= max
}

// IntInRange is inclusive on both ends.
func IntInRange(n, min, max int) bool {
	return n >= min && n <= max
}

// FloatInRange is inclusive on both ends. NaN is never in range.
func FloatInRange(n, min, max float64) bool {
	if math.IsNaN(n) {
		return false
	}
	return n >= min && n <= max
}
