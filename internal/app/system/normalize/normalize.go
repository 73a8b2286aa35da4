// Package normalize provides canonical forms for user-entered fields
// so lookups and comparisons behave consistently.
package normalize

import "strings"

// Email lowercases and trims an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace; case is preserved.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Role lowercases and trims a role label.
func Role(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Status lowercases and trims a status label.
func Status(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// AuthMethod lowercases and trims an auth method label.
func AuthMethod(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
