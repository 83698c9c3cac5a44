// utils/validation.go
package utils

import (
	"strconv"
	"strings"
)

// ParseIntField parses a required integer form field.
func ParseIntField(value string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(value))
}

// ParseOptionalIntField returns nil for an empty field.
func ParseOptionalIntField(value string) (*int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
