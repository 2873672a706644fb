package validation

import (
	"regexp"
	"strings"
)

// emailPattern accepts a simple local@domain.tld shape. Stricter RFC parsing
// rejects addresses real providers accept, so the check stays deliberately
// loose.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)

const (
	maxEmailLength    = 254
	minPasswordLength = 8
	maxPasswordLength = 72 // bcrypt input limit
)

// Email returns a human-readable error string for an invalid address, or ""
// when the address is acceptable.
func Email(raw string) string {
	email := strings.TrimSpace(raw)
	if email == "" {
		return "email is required"
	}
	if len(email) > maxEmailLength {
		return "email is too long"
	}
	if !emailPattern.MatchString(email) {
		return "email format is invalid"
	}
	return ""
}

// Password returns a human-readable error string for an unacceptable
// password, or "" when it is fine.
func Password(raw string) string {
	if len(raw) < minPasswordLength {
		return "password must be at least 8 characters"
	}
	if len(raw) > maxPasswordLength {
		return "password must be at most 72 characters"
	}
	return ""
}

// Optional trims a free-form field and returns nil for an empty result, so
// blank optional strings are stored as null rather than "".
func Optional(raw string) *string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// Required trims a mandatory field; ok is false when nothing remains.
func Required(raw string) (value string, ok bool) {
	trimmed := strings.TrimSpace(raw)
	return trimmed, trimmed != ""
}
