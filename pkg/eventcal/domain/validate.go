package domain

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// emailPattern matches addresses of the form local@domain.tld where the
// local part has no whitespace and the domain label contains neither "@",
// whitespace, nor a dot before the final dot.
var emailPattern = regexp.MustCompile(`^\S+@[^@\s.]+\.[^@\s]+$`)

// validateNonEmpty rejects the empty string.
func validateNonEmpty(field, s string) error {
	if s == "" {
		return &ValidationError{Field: field, Message: "must not be empty"}
	}
	return nil
}

// validateDate checks that s is an ISO calendar date (YYYY-MM-DD).
func validateDate(field, s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return &ValidationError{Field: field, Message: "invalid date, want YYYY-MM-DD"}
	}
	return nil
}

// validateClock checks that s is an HH:MM clock time with the hour in
// [0,23] and the minute in [0,59].
//
// The program this model was ported from had a precedence slip in this
// check that let any non-negative hour through. That permissive behavior
// is not preserved; the full range check applies.
func validateClock(field, s string) error {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return &ValidationError{Field: field, Message: "invalid time, want HH:MM"}
	}
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return &ValidationError{Field: field, Message: "invalid time, want HH:MM"}
	}
	minute, err := strconv.Atoi(mm)
	if err != nil {
		return &ValidationError{Field: field, Message: "invalid time, want HH:MM"}
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return &ValidationError{Field: field, Message: "hour must be in 0-23 and minute in 0-59"}
	}
	return nil
}

// validateEmail checks s against emailPattern.
func validateEmail(field, s string) error {
	if !emailPattern.MatchString(s) {
		return &ValidationError{Field: field, Message: "invalid email address"}
	}
	return nil
}

// combineInstant parses a date and clock time pair into a single instant.
func combineInstant(date, clock string) (time.Time, error) {
	return time.Parse("2006-01-02T15:04", date+"T"+clock)
}
