package handlers

import (
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/wonderhood/web/internal/api"
	"github.com/wonderhood/web/internal/models"
	"github.com/wonderhood/web/internal/services"
	"github.com/wonderhood/web/internal/session"
)

// The signup flow walks four steps: basic info, location, role, and (for
// parents) children. Values accumulate in hidden fields; leaving a step
// validates only that step, final submission re-validates everything.

type signupForm struct {
	Step int

	FirstName   string
	LastName    string
	Email       string
	Password    string
	PhoneNumber string

	Address string
	City    string
	State   string
	ZipCode string

	Role string

	ChildFirst    []string
	ChildLast     []string
	ChildBirthday []string
	ChildGrade    []string

	Errors map[string]string
}

func parseSignupForm(r *http.Request) *signupForm {
	_ = r.ParseForm()
	step, _ := strconv.Atoi(r.FormValue("step"))
	if step < 1 {
		step = 1
	}
	return &signupForm{
		Step:          step,
		FirstName:     strings.TrimSpace(r.FormValue("firstName")),
		LastName:      strings.TrimSpace(r.FormValue("lastName")),
		Email:         strings.TrimSpace(r.FormValue("email")),
		Password:      r.FormValue("password"),
		PhoneNumber:   r.FormValue("phoneNumber"),
		Address:       strings.TrimSpace(r.FormValue("address")),
		City:          strings.TrimSpace(r.FormValue("city")),
		State:         strings.TrimSpace(r.FormValue("state")),
		ZipCode:       strings.TrimSpace(r.FormValue("zipCode")),
		Role:          r.FormValue("role"),
		ChildFirst:    r.Form["childFirst"],
		ChildLast:     r.Form["childLast"],
		ChildBirthday: r.Form["childBirthday"],
		ChildGrade:    r.Form["childGrade"],
		Errors:        map[string]string{},
	}
}

func (f *signupForm) validateStep1() {
	if f.FirstName == "" {
		f.Errors["firstName"] = "First name is required."
	}
	if f.LastName == "" {
		f.Errors["lastName"] = "Last name is required."
	}
	email, ok := services.NormEmail(f.Email)
	if email == "" || !ok {
		f.Errors["email"] = "A valid email address is required."
	} else {
		f.Email = email
	}
	if len(f.Password) < 8 {
		f.Errors["password"] = "Password must be at least 8 characters."
	}
	if services.ToE164US(f.PhoneNumber) == "" {
		f.Errors["phoneNumber"] = "Enter a valid 10-digit US phone number."
	}
}

func (f *signupForm) validateStep2() {
	if f.Address == "" {
		f.Errors["address"] = "Street address is required."
	}
	if f.City == "" {
		f.Errors["city"] = "City is required."
	}
	if f.State == "" {
		f.Errors["state"] = "State is required."
	}
	if len(services.OnlyDigits(f.ZipCode)) != 5 {
		f.Errors["zipCode"] = "Enter a 5-digit ZIP code."
	}
}

func (f *signupForm) validateStep3() {
	switch f.Role {
	case "parent", "volunteer":
	default:
		f.Errors["role"] = "Choose how you want to join."
	}
}

func (f *signupForm) validateStep4(now time.Time) {
	if f.Role != "parent" {
		return
	}
	if len(f.ChildFirst) == 0 {
		f.Errors["children"] = "Add at least one child."
		return
	}
	for i := range f.ChildFirst {
		prefix := "child." + strconv.Itoa(i) + "."
		if strings.TrimSpace(f.ChildFirst[i]) == "" {
			f.Errors[prefix+"firstName"] = "First name is required."
		}
		if i < len(f.ChildLast) && strings.TrimSpace(f.ChildLast[i]) == "" {
			f.Errors[prefix+"lastName"] = "Last name is required."
		}
		if i >= len(f.ChildBirthday) || !services.AgeInRange(f.ChildBirthday[i], now) {
			f.Errors[prefix+"birthday"] = "Children must be between 10 and 18 years old."
		}
	}
}

// validateThrough runs validation for every step up to and including n.
func (f *signupForm) validateThrough(n int, now time.Time) bool {
	if n >= 1 {
		f.validateStep1()
	}
	if n >= 2 {
		f.validateStep2()
	}
	if n >= 3 {
		f.validateStep3()
	}
	if n >= 4 {
		f.validateStep4(now)
	}
	return len(f.Errors) == 0
}

func (f *signupForm) children() []models.ChildPayload {
	out := make([]models.ChildPayload, 0, len(f.ChildFirst))
	for i := range f.ChildFirst {
		c := models.ChildPayload{
			FirstName:         strings.TrimSpace(f.ChildFirst[i]),
			Homeschool:        true,
			EmergencyContacts: []models.EmergencyContact{},
		}
		if i < len(f.ChildLast) {
			c.LastName = strings.TrimSpace(f.ChildLast[i])
		}
		if i < len(f.ChildBirthday) {
			c.Birthday = f.ChildBirthday[i]
		}
		if i < len(f.ChildGrade) {
			if g, err := strconv.Atoi(f.ChildGrade[i]); err == nil {
				c.Grade = &g
			}
		}
		out = append(out, c)
	}
	return out
}

// GET /signup
func SignupForm(t *template.Template) http.HandlerFunc {
	render := page(t, "auth/signup.tmpl", "auth/signup.tmpl")
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := currentSession(r); ok {
			http.Redirect(w, r, "/profile", http.StatusSeeOther)
			return
		}
		render(w, pageData(r, "Join WonderHood", map[string]any{
			"Form":   &signupForm{Step: 1, Errors: map[string]string{}},
			"Grades": services.GradeOptions(),
		}))
	}
}

// POST /signup: one route for every step transition plus the final submit.
func SignupSubmit(t *template.Template) http.HandlerFunc {
	render := page(t, "auth/signup.tmpl", "auth/signup.tmpl")
	return func(w http.ResponseWriter, r *http.Request) {
		f := parseSignupForm(r)
		now := time.Now()

		show := func() {
			render(w, pageData(r, "Join WonderHood", map[string]any{
				"Form":   f,
				"Grades": services.GradeOptions(),
			}))
		}

		action := r.FormValue("action") // "next", "back", "submit"
		switch action {
		case "back":
			if f.Step > 1 {
				f.Step--
			}
			show()
			return
		case "next":
			if !f.validateThrough(f.Step, now) {
				show()
				return
			}
			// Volunteers have no children step; leaving step 3 submits.
			if f.Step >= 3 && f.Role != "parent" {
				break
			}
			if f.Step < 4 {
				f.Step++
				show()
				return
			}
		}

		// Final submission validates the whole form regardless of the step
		// the client claims to be on.
		lastStep := 3
		if f.Role == "parent" {
			lastStep = 4
		}
		if !f.validateThrough(lastStep, now) {
			show()
			return
		}

		payload := models.SignupPayload{
			FirstName:   f.FirstName,
			LastName:    f.LastName,
			Email:       f.Email,
			Password:    f.Password,
			PhoneNumber: services.ToE164US(f.PhoneNumber),
			Address:     f.Address,
			City:        f.City,
			State:       f.State,
			ZipCode:     services.OnlyDigits(f.ZipCode),
			Role:        models.Role(f.Role),
		}

		resp, err := api.C().Signup(r.Context(), payload)
		if err != nil {
			if api.IsStatus(err, http.StatusConflict) {
				f.Errors["email"] = "An account with that email already exists."
			} else {
				f.Errors["form"] = err.Error()
			}
			show()
			return
		}

		// Children are created with the fresh token; a failure here leaves
		// the account usable and the child addable from the profile page.
		childErrs := 0
		for _, c := range f.children() {
			if _, err := api.C().CreateChild(r.Context(), resp.Token, c); err != nil {
				childErrs++
			}
		}

		if _, err := session.Default().Start(w, resp.Token, resp.User); err != nil {
			http.Redirect(w, r, "/login?ok=saved", http.StatusSeeOther)
			return
		}
		dest := "/profile?ok=saved"
		if childErrs > 0 {
			dest = "/profile?error=" + url.QueryEscape("Some children could not be added. Please add them from your profile.")
		}
		http.Redirect(w, r, dest, http.StatusSeeOther)
	}
}
