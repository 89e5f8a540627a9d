package services

import "time"

// Intake age bounds for children, inclusive.
const (
	MinChildAge = 10
	MaxChildAge = 18
)

// CalculateAge computes whole years between a YYYY-MM-DD birthday and now.
// The naive year difference is decremented when now's month/day precedes
// the birthday's. Returns -1 for an unparseable date.
func CalculateAge(birthday string, now time.Time) int {
	d, err := time.Parse("2006-01-02", birthday)
	if err != nil {
		return -1
	}
	age := now.Year() - d.Year()
	if now.Month() < d.Month() || (now.Month() == d.Month() && now.Day() < d.Day()) {
		age--
	}
	return age
}

// AgeInRange reports whether the birthday yields an intake-eligible age.
func AgeInRange(birthday string, now time.Time) bool {
	age := CalculateAge(birthday, now)
	return age >= MinChildAge && age <= MaxChildAge
}
