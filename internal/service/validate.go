package service

import (
	"slices"
	"strings"
	"time"

	"backoffice-api/internal/common"
)

func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return invalid(field, "is required")
	}

	return nil
}

func requireOneOf(field, value string, allowed []string) error {
	if !slices.Contains(allowed, value) {
		return invalid(field, "should have value in: "+strings.Join(allowed, " "))
	}

	return nil
}

func requireNonNegative(field string, value float64) error {
	if value < 0 {
		return invalid(field, "should be greater or equal than 0")
	}

	return nil
}

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(common.DateLayout, value)
	if err != nil {
		return time.Time{}, invalid(field, "should be a date formatted as "+common.DateLayout)
	}

	return t, nil
}

// optionalDate accepts an empty value.
func optionalDate(field, value string) error {
	if value == "" {
		return nil
	}
	_, err := parseDate(field, value)

	return err
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
