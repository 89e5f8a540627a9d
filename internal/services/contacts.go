package services

import (
	"fmt"
	"strings"

	"github.com/wonderhood/web/internal/models"
)

// MaxEmergencyContacts is the per-child cap after deduplication.
const MaxEmergencyContacts = 3

type normalizedContact struct {
	firstName    string
	lastName     string
	relationship string
	phone        string
}

func normalizeContact(c models.EmergencyContact) normalizedContact {
	return normalizedContact{
		firstName:    strings.ToLower(strings.TrimSpace(c.FirstName)),
		lastName:     strings.ToLower(strings.TrimSpace(c.LastName)),
		relationship: strings.ToLower(strings.TrimSpace(c.Relationship)),
		phone:        OnlyDigits(c.PhoneNumber),
	}
}

// DedupeContacts collapses contacts whose normalized field tuples match
// (case-insensitive names/relationship, digits-only phone) and truncates
// the result to MaxEmergencyContacts. First occurrence wins.
func DedupeContacts(contacts []models.EmergencyContact) []models.EmergencyContact {
	seen := make(map[normalizedContact]struct{}, len(contacts))
	out := make([]models.EmergencyContact, 0, len(contacts))
	for _, c := range contacts {
		key := normalizeContact(c)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}
	if len(out) > MaxEmergencyContacts {
		out = out[:MaxEmergencyContacts]
	}
	return out
}

// ContactsEqual compares two contact lists as normalized sets, used to skip
// a PATCH when the edit form did not actually change the contacts.
func ContactsEqual(a, b []models.EmergencyContact) bool {
	as := make(map[normalizedContact]struct{}, len(a))
	for _, c := range a {
		as[normalizeContact(c)] = struct{}{}
	}
	bs := make(map[normalizedContact]struct{}, len(b))
	for _, c := range b {
		bs[normalizeContact(c)] = struct{}{}
	}
	if len(as) != len(bs) {
		return false
	}
	for k := range as {
		if _, ok := bs[k]; !ok {
			return false
		}
	}
	return true
}

func contactEmpty(c models.EmergencyContact) bool {
	return strings.TrimSpace(c.FirstName) == "" &&
		strings.TrimSpace(c.LastName) == "" &&
		strings.TrimSpace(c.Relationship) == "" &&
		strings.TrimSpace(c.PhoneNumber) == ""
}

// ValidateContacts enforces the intake policy: the first contact is always
// required in full (names, relationship, phone convertible to +1 E.164);
// later contacts are validated only when any of their fields is non-empty.
// Errors are keyed "contacts.<index>.<field>" for inline rendering.
func ValidateContacts(contacts []models.EmergencyContact) map[string]string {
	errs := map[string]string{}
	if len(contacts) == 0 {
		errs["contacts.0.firstName"] = "At least one emergency contact is required."
		return errs
	}
	for i, c := range contacts {
		if i > 0 && contactEmpty(c) {
			continue
		}
		if strings.TrimSpace(c.FirstName) == "" {
			errs[fmt.Sprintf("contacts.%d.firstName", i)] = "First name is required."
		}
		if strings.TrimSpace(c.LastName) == "" {
			errs[fmt.Sprintf("contacts.%d.lastName", i)] = "Last name is required."
		}
		if strings.TrimSpace(c.Relationship) == "" {
			errs[fmt.Sprintf("contacts.%d.relationship", i)] = "Relationship is required."
		}
		if ToE164US(c.PhoneNumber) == "" {
			errs[fmt.Sprintf("contacts.%d.phoneNumber", i)] = "Enter a valid 10-digit US phone number."
		}
	}
	return errs
}
