package services

import (
	"regexp"
	"strings"
	"unicode"
)

var reE164US = regexp.MustCompile(`^\+1(\d{10})$`)

// OnlyDigits strips everything but 0-9.
func OnlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatUS renders free-form input as XXX-XXX-XXXX for display. Digits past
// the tenth are dropped; partial input keeps whatever groups exist.
func FormatUS(s string) string {
	d := OnlyDigits(s)
	if len(d) > 10 {
		d = d[:10]
	}
	parts := []string{}
	for _, p := range []string{sliceSafe(d, 0, 3), sliceSafe(d, 3, 6), sliceSafe(d, 6, 10)} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "-")
}

// ToE164US converts to +1XXXXXXXXXX wire format. Exactly 10 digits qualify;
// 11 digits with a leading country-code 1 have it stripped first. Anything
// else returns "".
func ToE164US(s string) string {
	d := OnlyDigits(s)
	if len(d) == 11 && strings.HasPrefix(d, "1") {
		d = d[1:]
	}
	if len(d) != 10 {
		return ""
	}
	return "+1" + d
}

func sliceSafe(s string, a, b int) string {
	if a >= len(s) {
		return ""
	}
	if b > len(s) {
		b = len(s)
	}
	return s[a:b]
}

// E164ToUS formats a stored +1 number back to the display form.
func E164ToUS(e164 string) string {
	if e164 == "" {
		return ""
	}
	if m := reE164US.FindStringSubmatch(e164); m != nil {
		return FormatUS(m[1])
	}
	return FormatUS(e164)
}
