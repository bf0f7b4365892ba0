package util

import (
	"fmt"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

const (
	// MaxEmailLength caps email addresses per RFC 5321.
	MaxEmailLength = 254
	// MaxNameLength caps free-text display names.
	MaxNameLength = 100
)

// NormalizeEmail lowercases and trims an email address, then validates it.
// Returns the normalized address or an error describing the first violation.
func NormalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	if email == "" {
		return "", fmt.Errorf("email is required")
	}
	if len(email) > MaxEmailLength {
		return "", fmt.Errorf("email must be no more than %d characters", MaxEmailLength)
	}
	if !emailRegex.MatchString(email) {
		return "", fmt.Errorf("invalid email format")
	}
	return email, nil
}

// IsValidEmail checks an email address without returning an error.
func IsValidEmail(email string) bool {
	_, err := NormalizeEmail(email)
	return err == nil
}
