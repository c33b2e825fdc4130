package model

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/alimadkour96/4a8lny/internal/errs"
)

// Validator is implemented by models that check their own constraints before each write.
type Validator interface {
	Validate() error
}

// Normalizer is implemented by models that canonicalize fields (trim, lower-case) before validation.
type Normalizer interface {
	Normalize()
}

var (
	emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)
	urlPattern   = regexp.MustCompile(`^https?://.+`)
	phonePattern = regexp.MustCompile(`^\+?[1-9]\d{0,15}$`)
)

func required(field, v string) error {
	if strings.TrimSpace(v) == "" {
		return errs.Validation("%s is required", field)
	}
	return nil
}

func lengthBetween(field, v string, min, max int) error {
	n := utf8.RuneCountInString(v)
	if n < min {
		return errs.Validation("%s must be at least %d characters long", field, min)
	}
	if max > 0 && n > max {
		return errs.Validation("%s cannot exceed %d characters", field, max)
	}
	return nil
}

func maxLength(field, v string, max int) error {
	if utf8.RuneCountInString(v) > max {
		return errs.Validation("%s cannot exceed %d characters", field, max)
	}
	return nil
}

func oneOf(field, v string, allowed []string) error {
	for _, a := range allowed {
		if v == a {
			return nil
		}
	}
	return errs.Validation("%s must be one of %s", field, strings.Join(allowed, ", "))
}

func optionalURL(field, v string) error {
	if v == "" || urlPattern.MatchString(v) {
		return nil
	}
	return errs.Validation("Please enter a valid %s URL", field)
}

func nonNegative(field string, v float64) error {
	if v < 0 {
		return errs.Validation("%s cannot be negative", field)
	}
	return nil
}

// firstErr returns the first non-nil error.
func firstErr(checks ...error) error {
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	return nil
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
