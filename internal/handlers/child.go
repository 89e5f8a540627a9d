package handlers

import (
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/wonderhood/web/internal/api"
	"github.com/wonderhood/web/internal/models"
	"github.com/wonderhood/web/internal/services"
)

type childForm struct {
	ID               string
	FirstName        string
	LastName         string
	PreferredName    string
	Homeschool       bool
	Grade            string
	Birthday         string
	AllergiesMedical string
	Notes            string
	PhotoConsent     bool
	Waiver           bool
	Contacts         []models.EmergencyContact
	Errors           map[string]string
}

func parseChildForm(r *http.Request) childForm {
	_ = r.ParseForm()
	f := childForm{
		FirstName:        strings.TrimSpace(r.FormValue("firstName")),
		LastName:         strings.TrimSpace(r.FormValue("lastName")),
		PreferredName:    strings.TrimSpace(r.FormValue("preferredName")),
		Homeschool:       r.FormValue("homeschool") != "",
		Grade:            strings.TrimSpace(r.FormValue("grade")),
		Birthday:         strings.TrimSpace(r.FormValue("birthday")),
		AllergiesMedical: strings.TrimSpace(r.FormValue("allergiesMedical")),
		Notes:            strings.TrimSpace(r.FormValue("notes")),
		PhotoConsent:     r.FormValue("photoConsent") != "",
		Waiver:           r.FormValue("waiver") != "",
		Errors:           map[string]string{},
	}
	for i := 0; i < services.MaxEmergencyContacts; i++ {
		f.Contacts = append(f.Contacts, models.EmergencyContact{
			FirstName:    strings.TrimSpace(r.FormValue(fmt.Sprintf("contacts.%d.firstName", i))),
			LastName:     strings.TrimSpace(r.FormValue(fmt.Sprintf("contacts.%d.lastName", i))),
			Relationship: strings.TrimSpace(r.FormValue(fmt.Sprintf("contacts.%d.relationship", i))),
			PhoneNumber:  strings.TrimSpace(r.FormValue(fmt.Sprintf("contacts.%d.phoneNumber", i))),
		})
	}
	return f
}

func (f *childForm) validate(now time.Time) bool {
	if f.FirstName == "" {
		f.Errors["firstName"] = "First name is required."
	}
	if f.LastName == "" {
		f.Errors["lastName"] = "Last name is required."
	}
	if f.Birthday == "" {
		f.Errors["birthday"] = "Birthday is required."
	} else if !services.AgeInRange(f.Birthday, now) {
		f.Errors["birthday"] = fmt.Sprintf("Children must be between %d and %d years old.",
			services.MinChildAge, services.MaxChildAge)
	}
	if !f.Waiver {
		f.Errors["waiver"] = "The liability waiver must be accepted."
	}
	for k, v := range services.ValidateContacts(f.Contacts) {
		f.Errors[k] = v
	}
	return len(f.Errors) == 0
}

// payload converts a validated form into the wire shape: contacts deduped
// and capped, phones in E.164, grade decoded from the select value.
func (f *childForm) payload() models.ChildPayload {
	contacts := services.DedupeContacts(f.Contacts)
	kept := contacts[:0]
	for _, c := range contacts {
		if strings.TrimSpace(c.FirstName) == "" && strings.TrimSpace(c.PhoneNumber) == "" {
			continue
		}
		c.PhoneNumber = services.ToE164US(c.PhoneNumber)
		kept = append(kept, c)
	}

	p := models.ChildPayload{
		FirstName:         f.FirstName,
		LastName:          f.LastName,
		PreferredName:     f.PreferredName,
		Homeschool:        f.Homeschool,
		Birthday:          f.Birthday,
		AllergiesMedical:  f.AllergiesMedical,
		Notes:             f.Notes,
		PhotoConsent:      f.PhotoConsent,
		Waiver:            f.Waiver,
		EmergencyContacts: kept,
	}
	if g, err := strconv.Atoi(f.Grade); err == nil {
		p.Grade = &g
	}
	return p
}

func childFormFrom(c models.Child) childForm {
	f := childForm{
		ID:               c.ID,
		FirstName:        c.FirstName,
		LastName:         c.LastName,
		PreferredName:    c.PreferredName,
		Homeschool:       c.Homeschool,
		Birthday:         c.Birthday,
		AllergiesMedical: c.AllergiesMedical,
		Notes:            c.Notes,
		PhotoConsent:     c.PhotoConsent,
		Waiver:           c.Waiver,
		Errors:           map[string]string{},
	}
	if c.Grade != nil {
		f.Grade = strconv.Itoa(*c.Grade)
	}
	for _, ec := range c.EmergencyContacts {
		ec.PhoneNumber = services.E164ToUS(ec.PhoneNumber)
		f.Contacts = append(f.Contacts, ec)
	}
	for len(f.Contacts) < services.MaxEmergencyContacts {
		f.Contacts = append(f.Contacts, models.EmergencyContact{})
	}
	return f
}

func childPageData(r *http.Request, title string, f childForm) map[string]any {
	return pageData(r, title, map[string]any{
		"Form":   f,
		"Grades": services.GradeOptions(),
	})
}

// GET /profile/children/new
func ChildNewForm(t *template.Template) http.HandlerFunc {
	render := page(t, "profile/child_form.tmpl", "profile/child_form.tmpl")
	return func(w http.ResponseWriter, r *http.Request) {
		f := childForm{Homeschool: true, Errors: map[string]string{}}
		for len(f.Contacts) < services.MaxEmergencyContacts {
			f.Contacts = append(f.Contacts, models.EmergencyContact{})
		}
		render(w, childPageData(r, "Add Child", f))
	}
}

// POST /profile/children/new
func ChildCreateSubmit(t *template.Template) http.HandlerFunc {
	render := page(t, "profile/child_form.tmpl", "profile/child_form.tmpl")
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := mustSession(w, r)
		if !ok {
			return
		}
		f := parseChildForm(r)
		if !f.validate(time.Now()) {
			render(w, childPageData(r, "Add Child", f))
			return
		}
		if _, err := api.C().CreateChild(r.Context(), s.Token, f.payload()); err != nil {
			if api.IsStatus(err, http.StatusUnauthorized) {
				redirectToLogin(w, r)
				return
			}
			f.Errors["form"] = err.Error()
			render(w, childPageData(r, "Add Child", f))
			return
		}
		http.Redirect(w, r, "/profile?ok=child_saved", http.StatusSeeOther)
	}
}

// GET /profile/children/{childID}/edit
func ChildEditForm(t *template.Template) http.HandlerFunc {
	render := page(t, "profile/child_form.tmpl", "profile/child_form.tmpl")
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := mustSession(w, r)
		if !ok {
			return
		}
		id := chi.URLParam(r, "childID")

		kids, err := api.C().Children(r.Context(), s.Token)
		if err != nil {
			if api.IsStatus(err, http.StatusUnauthorized) {
				redirectToLogin(w, r)
				return
			}
			http.Redirect(w, r, "/profile?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
			return
		}
		for _, k := range kids {
			if k.ID == id {
				render(w, childPageData(r, "Edit Child", childFormFrom(k)))
				return
			}
		}
		http.NotFound(w, r)
	}
}

// POST /profile/children/{childID}/edit
func ChildUpdateSubmit(t *template.Template) http.HandlerFunc {
	render := page(t, "profile/child_form.tmpl", "profile/child_form.tmpl")
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := mustSession(w, r)
		if !ok {
			return
		}
		id := chi.URLParam(r, "childID")

		f := parseChildForm(r)
		f.ID = id
		if !f.validate(time.Now()) {
			render(w, childPageData(r, "Edit Child", f))
			return
		}
		if _, err := api.C().UpdateChild(r.Context(), s.Token, id, f.payload()); err != nil {
			if api.IsStatus(err, http.StatusUnauthorized) {
				redirectToLogin(w, r)
				return
			}
			f.Errors["form"] = err.Error()
			render(w, childPageData(r, "Edit Child", f))
			return
		}
		http.Redirect(w, r, "/profile?ok=child_saved", http.StatusSeeOther)
	}
}
