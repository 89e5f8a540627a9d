package services

import (
	"net/mail"
	"strings"
)

// NormEmail lowercases and trims an email address. Empty is allowed (the
// caller decides whether the field is optional); anything non-empty must
// parse as an address.
func NormEmail(s string) (string, bool) {
	e := strings.TrimSpace(strings.ToLower(s))
	if e == "" {
		return "", true
	}
	_, err := mail.ParseAddress(e)
	return e, err == nil
}
