// Package numparse normalizes the string-typed numeric fields the keyword
// provider returns, e.g. "< 10" for "fewer than 10" and "0.5%" for rates.
// Every helper defaults to zero instead of failing; the provider format is
// not stable enough to treat a parse error as fatal.
package numparse

import (
	"math"
	"strconv"
	"strings"
)

// Count normalizes a count field that may arrive as a JSON number or as a
// decorated string such as "< 10". Unparseable input yields 0.
func Count(v interface{}) int {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return int(n)
	case int:
		return n
	case string:
		return countFromString(n)
	default:
		return 0
	}
}

func countFromString(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	// Strip everything that is not a digit; handles "< 10", "1,000" and
	// stray whitespace in one pass.
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}

	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0
	}
	return n
}

// Rate normalizes a percentage or click field that may arrive as a JSON
// number or a string with a trailing "%". Unparseable input yields 0,
// never NaN.
func Rate(v interface{}) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return sanitize(n)
	case int:
		return float64(n)
	case string:
		s := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(n), "%"))
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		return sanitize(f)
	default:
		return 0
	}
}

func sanitize(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
