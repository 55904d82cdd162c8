// Package toolutil provides shared helper functions for tubestudy MCP tools.
package toolutil

import (
	"errors"
	"strings"
)

// ClampLimit bounds a requested item count to [1, max], substituting def for
// zero or negative input.
func ClampLimit(n, def, max int) int {
	if n <= 0 {
		return def
	}
	if n > max {
		return max
	}
	return n
}

// NormEmail lowercases and validates an email address just enough to be a
// stable storage key.
func NormEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 || !strings.Contains(email[at:], ".") {
		return "", errors.New("invalid email address")
	}
	return email, nil
}
