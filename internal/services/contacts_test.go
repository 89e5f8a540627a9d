package services

import (
	"testing"

	"github.com/wonderhood/web/internal/models"
)

func TestDedupeCollapsesFormattingDifferences(t *testing.T) {
	in := []models.EmergencyContact{
		{FirstName: "Pat", LastName: "Lee", Relationship: "Aunt", PhoneNumber: "123-456-7890"},
		{FirstName: "pat", LastName: " Lee ", Relationship: "aunt", PhoneNumber: "1234567890"},
	}
	out := DedupeContacts(in)
	if len(out) != 1 {
		t.Fatalf("len = %d, want 1", len(out))
	}
	// First occurrence wins, original formatting preserved.
	if out[0].PhoneNumber != "123-456-7890" {
		t.Errorf("kept %q, want the first entry", out[0].PhoneNumber)
	}
}

func TestDedupeTruncatesToThree(t *testing.T) {
	in := []models.EmergencyContact{
		{FirstName: "A", PhoneNumber: "1112223331"},
		{FirstName: "B", PhoneNumber: "1112223332"},
		{FirstName: "C", PhoneNumber: "1112223333"},
		{FirstName: "D", PhoneNumber: "1112223334"},
	}
	out := DedupeContacts(in)
	if len(out) != 3 {
		t.Errorf("len = %d, want 3", len(out))
	}
}

func TestContactsEqualIgnoresFormatting(t *testing.T) {
	a := []models.EmergencyContact{
		{FirstName: "Pat", LastName: "Lee", Relationship: "Aunt", PhoneNumber: "(123) 456-7890"},
	}
	b := []models.EmergencyContact{
		{FirstName: "PAT", LastName: "lee", Relationship: "aunt", PhoneNumber: "1234567890"},
	}
	if !ContactsEqual(a, b) {
		t.Error("formatting-only differences should compare equal")
	}

	b[0].PhoneNumber = "9876543210"
	if ContactsEqual(a, b) {
		t.Error("different phone numbers should not compare equal")
	}
}

func TestValidateContactsFirstRequired(t *testing.T) {
	errs := ValidateContacts([]models.EmergencyContact{
		{FirstName: "", LastName: "", Relationship: "", PhoneNumber: "123"},
	})
	for _, key := range []string{"contacts.0.firstName", "contacts.0.lastName", "contacts.0.relationship", "contacts.0.phoneNumber"} {
		if errs[key] == "" {
			t.Errorf("missing error for %s", key)
		}
	}
}

func TestValidateContactsLaterOnlyWhenTouched(t *testing.T) {
	contacts := []models.EmergencyContact{
		{FirstName: "Pat", LastName: "Lee", Relationship: "Aunt", PhoneNumber: "1234567890"},
		{}, // untouched second contact is fine
	}
	if errs := ValidateContacts(contacts); len(errs) != 0 {
		t.Errorf("unexpected errors: %v", errs)
	}

	contacts[1].FirstName = "Sam" // partially filled → now required in full
	errs := ValidateContacts(contacts)
	if errs["contacts.1.lastName"] == "" || errs["contacts.1.phoneNumber"] == "" {
		t.Errorf("partially filled contact should be validated, got %v", errs)
	}
}
