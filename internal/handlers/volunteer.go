package handlers

import (
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/wonderhood/web/internal/api"
	"github.com/wonderhood/web/internal/locks"
	"github.com/wonderhood/web/internal/models"
	"github.com/wonderhood/web/internal/services"
)

type oppCard struct {
	Opp     models.Opportunity
	Applied bool
}

// GET /get-involved
func GetInvolvedPage(t *template.Template) http.HandlerFunc {
	render := page(t, "volunteer/get_involved.tmpl", "volunteer/get_involved.tmpl")
	return func(w http.ResponseWriter, r *http.Request) {
		data := map[string]any{}

		opps, err := api.C().Opportunities(r.Context())
		if err != nil {
			data["LoadError"] = err.Error()
		}

		var subject string
		if s, ok := currentSession(r); ok {
			subject = locks.Subject(s.Token)
		}

		cards := make([]oppCard, 0, len(opps))
		for _, o := range opps {
			applied := subject != "" && locks.Default().IsOppSubmitted(subject, o.ID)
			cards = append(cards, oppCard{Opp: o, Applied: applied})
		}
		data["Opportunities"] = cards
		data["GeneralApplied"] = subject != "" && locks.Default().IsGeneralSubmitted(subject)

		render(w, pageData(r, "Get Involved", data))
	}
}

type volunteerForm struct {
	OppID        string
	OppTitle     string
	FirstName    string
	LastName     string
	Email        string
	PhoneNumber  string
	Cities       string
	DaysAvail    []string
	TimesAvail   []string
	Skills       string
	Bio          string
	PhotoConsent bool
	BgConsent    bool
	Errors       map[string]string
}

var (
	dayOptions  = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	timeOptions = []string{"Morning", "Afternoon", "Evening"}
)

func volunteerPageData(r *http.Request, f volunteerForm) map[string]any {
	title := "Volunteer Application"
	if f.OppTitle != "" {
		title = "Apply: " + f.OppTitle
	}
	return pageData(r, title, map[string]any{
		"Form":        f,
		"DayOptions":  dayOptions,
		"TimeOptions": timeOptions,
	})
}

func parseVolunteerForm(r *http.Request) volunteerForm {
	_ = r.ParseForm()
	return volunteerForm{
		FirstName:    strings.TrimSpace(r.FormValue("firstName")),
		LastName:     strings.TrimSpace(r.FormValue("lastName")),
		Email:        strings.TrimSpace(r.FormValue("email")),
		PhoneNumber:  strings.TrimSpace(r.FormValue("phoneNumber")),
		Cities:       strings.TrimSpace(r.FormValue("cities")),
		DaysAvail:    r.Form["daysAvail"],
		TimesAvail:   r.Form["timesAvail"],
		Skills:       strings.TrimSpace(r.FormValue("skills")),
		Bio:          strings.TrimSpace(r.FormValue("bio")),
		PhotoConsent: r.FormValue("photoConsent") != "",
		BgConsent:    r.FormValue("backgroundCheckConsent") != "",
		Errors:       map[string]string{},
	}
}

func (f *volunteerForm) validate() bool {
	if f.FirstName == "" {
		f.Errors["firstName"] = "First name is required."
	}
	if f.LastName == "" {
		f.Errors["lastName"] = "Last name is required."
	}
	if _, ok := services.NormEmail(f.Email); !ok {
		f.Errors["email"] = "Invalid email address."
	}
	if f.PhoneNumber != "" && services.ToE164US(f.PhoneNumber) == "" {
		f.Errors["phoneNumber"] = "Enter a valid 10-digit US phone number."
	}
	if !f.PhotoConsent {
		f.Errors["photoConsent"] = "Photo consent is required to volunteer."
	}
	if !f.BgConsent {
		f.Errors["backgroundCheckConsent"] = "Background check consent is required."
	}
	return len(f.Errors) == 0
}

func (f *volunteerForm) payload() models.VolunteerCreate {
	email, _ := services.NormEmail(f.Email)
	return models.VolunteerCreate{
		FirstName:              f.FirstName,
		LastName:               f.LastName,
		Email:                  email,
		PhoneNumber:            services.ToE164US(f.PhoneNumber),
		Cities:                 splitList(f.Cities),
		DaysAvail:              f.DaysAvail,
		TimesAvail:             f.TimesAvail,
		Skills:                 splitList(f.Skills),
		Bio:                    f.Bio,
		PhotoConsent:           f.PhotoConsent,
		BackgroundCheckConsent: f.BgConsent,
	}
}

// oppIDFromQuery reads the optional ?opp= target; empty means the general
// application.
func oppIDFromQuery(r *http.Request) string {
	return strings.TrimSpace(r.URL.Query().Get("opp"))
}

// GET /volunteer/apply
func VolunteerApplyForm(t *template.Template) http.HandlerFunc {
	render := page(t, "volunteer/apply.tmpl", "volunteer/apply.tmpl")
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := mustSession(w, r)
		if !ok {
			return
		}

		f := volunteerForm{
			OppID:     oppIDFromQuery(r),
			FirstName: s.User.FirstName,
			LastName:  s.User.LastName,
			Email:     s.User.Email,
			Errors:    map[string]string{},
		}
		if s.User.PhoneNumber != "" {
			f.PhoneNumber = services.E164ToUS(s.User.PhoneNumber)
		}

		subject := locks.Subject(s.Token)
		if subject != "" {
			submitted := locks.Default().IsGeneralSubmitted(subject)
			if f.OppID != "" {
				submitted = locks.Default().IsOppSubmitted(subject, f.OppID)
			}
			if submitted {
				http.Redirect(w, r, "/get-involved?error=already_applied", http.StatusSeeOther)
				return
			}
		}

		if f.OppID != "" {
			if opp := findOpportunity(r, f.OppID); opp != nil {
				f.OppTitle = opp.Title
			}
		}
		render(w, volunteerPageData(r, f))
	}
}

func findOpportunity(r *http.Request, id string) *models.Opportunity {
	opps, err := api.C().Opportunities(r.Context())
	if err != nil {
		return nil
	}
	for i := range opps {
		if opps[i].ID == id {
			return &opps[i]
		}
	}
	return nil
}

// POST /volunteer/apply
func VolunteerApplySubmit(t *template.Template) http.HandlerFunc {
	render := page(t, "volunteer/apply.tmpl", "volunteer/apply.tmpl")
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := mustSession(w, r)
		if !ok {
			return
		}
		f := parseVolunteerForm(r)
		f.OppID = oppIDFromQuery(r)
		if !f.validate() {
			if f.OppID != "" {
				if opp := findOpportunity(r, f.OppID); opp != nil {
					f.OppTitle = opp.Title
				}
			}
			render(w, volunteerPageData(r, f))
			return
		}

		subject := locks.Subject(s.Token)
		_, err := api.C().ApplyVolunteer(r.Context(), s.Token, f.OppID, f.payload())
		if err != nil {
			switch {
			case api.IsStatus(err, http.StatusUnauthorized):
				redirectToLogin(w, r)
			case api.IsStatus(err, http.StatusConflict):
				// The backend already has this application; remember that so
				// the form stays disabled next time.
				markVolunteerLock(subject, f.OppID)
				http.Redirect(w, r, "/get-involved?error=already_applied", http.StatusSeeOther)
			default:
				http.Redirect(w, r, "/get-involved?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
			}
			return
		}

		markVolunteerLock(subject, f.OppID)
		http.Redirect(w, r, "/get-involved?ok=applied", http.StatusSeeOther)
	}
}

func markVolunteerLock(subject, oppID string) {
	if subject == "" {
		return
	}
	if oppID == "" {
		_ = locks.Default().MarkGeneralSubmitted(subject)
		return
	}
	_ = locks.Default().MarkOppSubmitted(subject, oppID)
}

// GET /volunteer/opportunities/{oppID}: public detail page.
func OpportunityDetail(t *template.Template) http.HandlerFunc {
	render := page(t, "volunteer/opportunity.tmpl", "volunteer/opportunity.tmpl")
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "oppID")
		opp := findOpportunity(r, id)
		if opp == nil {
			http.NotFound(w, r)
			return
		}

		applied := false
		if s, ok := currentSession(r); ok {
			if subject := locks.Subject(s.Token); subject != "" {
				applied = locks.Default().IsOppSubmitted(subject, opp.ID)
			}
		}

		render(w, pageData(r, opp.Title, map[string]any{
			"Opp":     *opp,
			"Applied": applied,
		}))
	}
}
