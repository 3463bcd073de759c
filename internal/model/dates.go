package model

import (
	"math"
	"strings"
	"time"
)

// DateLayout is the canonical time-entry date format
const DateLayout = "2006-01-02"

// CanonicalDate normalizes a date string to YYYY-MM-DD. Dotted dates
// (YYYY.MM.DD) are accepted and rewritten. Returns "" when the input
// does not parse as a real calendar date.
func CanonicalDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, ".", "-")
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return ""
	}
	return t.Format(DateLayout)
}

// DateOf returns the canonical calendar date of a timestamp
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}

// RoundHours rounds an hour value to 2 decimal places
func RoundHours(h float64) float64 {
	return math.Round(h*100) / 100
}

// ValidHours reports whether h may be stored as a time entry value:
// finite and strictly positive after rounding.
func ValidHours(h float64) bool {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return false
	}
	return RoundHours(h) > 0
}
