package services

import "testing"

func TestFormatUS(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"1234567890123", "123-456-7890"}, // truncated to 10 digits
		{"1234567890", "123-456-7890"},
		{"(123) 456-7890", "123-456-7890"},
		{"123456", "123-456"},
		{"12", "12"},
		{"", ""},
		{"abc", ""},
	}
	for _, c := range cases {
		if got := FormatUS(c.in); got != c.want {
			t.Errorf("FormatUS(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestToE164US(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"1234567890", "+11234567890"},
		{"11234567890", "+11234567890"},   // 11 digits, leading country code stripped
		{"123-456-7890", "+11234567890"},  // separators ignored
		{"21234567890", ""},               // 11 digits without leading 1
		{"123456789", ""},                 // too short
		{"123456789012", ""},              // too long
		{"", ""},
	}
	for _, c := range cases {
		if got := ToE164US(c.in); got != c.want {
			t.Errorf("ToE164US(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestE164ToUS(t *testing.T) {
	if got := E164ToUS("+11234567890"); got != "123-456-7890" {
		t.Errorf("E164ToUS(+11234567890) = %q", got)
	}
	if got := E164ToUS(""); got != "" {
		t.Errorf("E164ToUS(\"\") = %q, want empty", got)
	}
}
