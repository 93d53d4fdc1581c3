package util

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// ParseDate accepts "2006-01-02" or RFC3339 strings.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// EndOfDay normalizes a range upper bound to 23:59:59.999999999 so a
// same-day bound stays inclusive.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// Round1 rounds to one decimal place.
func Round1(f float64) float64 {
	if f >= 0 {
		return float64(int(f*10+0.5)) / 10
	}
	return float64(int(f*10-0.5)) / 10
}

// PtrString converts a string to *string, mapping "" to nil.
func PtrString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
