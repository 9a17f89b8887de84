package application

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/bnema/panelbot/internal/domain"
)

func IntInRange(field string, min, max int) func(string) (string, error) {
	return func(raw string) (string, error) {
		value, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return "", domain.NewValidationError(field, "must be a whole number between %d and %d", min, max)
		}
		if value < min || value > max {
			return "", domain.NewValidationError(field, "must be between %d and %d", min, max)
		}
		return strconv.Itoa(value), nil
	}
}

func NonEmptyMax(field string, max int) func(string) (string, error) {
	return func(raw string) (string, error) {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			return "", domain.NewValidationError(field, "must not be empty")
		}
		if utf8.RuneCountInString(trimmed) > max {
			return "", domain.NewValidationError(field, "must be at most %d characters", max)
		}
		return trimmed, nil
	}
}

// OneOf matches case-insensitively and returns the canonical lowercase key.
func OneOf(field string, keys []string) func(string) (string, error) {
	allowed := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		allowed[strings.ToLower(key)] = struct{}{}
	}
	return func(raw string) (string, error) {
		value := strings.ToLower(strings.TrimSpace(raw))
		if _, ok := allowed[value]; !ok {
			return "", domain.NewValidationError(field, "must be one of %s", strings.Join(keys, ", "))
		}
		return value, nil
	}
}

// Token accepts a single non-empty word.
func Token(field string) func(string) (string, error) {
	return func(raw string) (string, error) {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			return "", domain.NewValidationError(field, "must not be empty")
		}
		if strings.ContainsAny(trimmed, " \t\r\n") {
			return "", domain.NewValidationError(field, "must not contain spaces")
		}
		return trimmed, nil
	}
}
