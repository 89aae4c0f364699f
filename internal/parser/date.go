package parser

import (
	"fmt"
	"time"
)

const (
	// DateLayout accepts YYYY-MM-DD with or without zero-padded month and day
	DateLayout = "2006-1-2"

	// CanonicalDateLayout is the form record dates are compared in
	CanonicalDateLayout = "2006-01-02"
)

// ValidateDate reports whether s is a valid calendar date in YYYY-MM-DD form
// Non-zero-padded months and days ("2025-6-22") are accepted
func ValidateDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// NormalizeDate returns the zero-padded form of a valid date, so that a
// filter of "2025-6-22" matches records dated "2025-06-22"
func NormalizeDate(s string) (string, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t.Format(CanonicalDateLayout), nil
}
