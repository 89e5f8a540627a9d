package handlers

import "time"

// America/Denver for all display formatting (the org and its families are
// in Colorado).
var tzDenver *time.Location

func init() {
	loc, err := time.LoadLocation("America/Denver")
	if err != nil {
		tzDenver = time.FixedZone("MST", -7*3600)
		return
	}
	tzDenver = loc
}

// Date-only friendly string, e.g. "Mon, 02 Jan 2006"
func fmtDate(d time.Time) string {
	return d.In(tzDenver).Format("Mon, 02 Jan 2006")
}

func fmtDateTime(d time.Time) string {
	return d.In(tzDenver).Format("Mon, 02 Jan 2006 15:04")
}

// fmtAPIDate renders the backend's RFC3339 (or date-only) strings for
// display; unparseable input is shown as-is rather than hidden.
func fmtAPIDate(s string) string {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return fmtDate(t)
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return fmtDate(t)
	}
	return s
}
