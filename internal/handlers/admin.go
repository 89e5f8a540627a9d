package handlers

import (
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/wonderhood/web/internal/api"
	"github.com/wonderhood/web/internal/models"
)

// matchOpportunity does the admin list's server-side search: one needle,
// case-insensitive, across title, tags and skills.
func matchOpportunity(o models.Opportunity, needle string) bool {
	if needle == "" {
		return true
	}
	needle = strings.ToLower(needle)
	if strings.Contains(strings.ToLower(o.Title), needle) {
		return true
	}
	for _, t := range o.Tags {
		if strings.Contains(strings.ToLower(t), needle) {
			return true
		}
	}
	for _, s := range o.Skills {
		if strings.Contains(strings.ToLower(s), needle) {
			return true
		}
	}
	return false
}

// GET /admin/opportunities
func AdminOpportunities(t *template.Template) http.HandlerFunc {
	render := page(t, "admin/opportunities.tmpl", "admin/opportunities.tmpl")
	return func(w http.ResponseWriter, r *http.Request) {
		q := strings.TrimSpace(r.URL.Query().Get("q"))

		data := map[string]any{"Query": q}
		opps, err := api.C().Opportunities(r.Context())
		if err != nil {
			data["LoadError"] = err.Error()
		}

		filtered := make([]models.Opportunity, 0, len(opps))
		for _, o := range opps {
			if matchOpportunity(o, q) {
				filtered = append(filtered, o)
			}
		}
		data["Opportunities"] = filtered
		data["Total"] = len(opps)

		render(w, pageData(r, "Manage Opportunities", data))
	}
}

type oppForm struct {
	ID           string
	Title        string
	Venue        []string
	Duties       string
	Skills       string
	Time         string
	Requirements string
	Tags         string
	MinAge       string
	BgCheck      bool
	Errors       map[string]string
}

func parseOppForm(r *http.Request) oppForm {
	_ = r.ParseForm()
	return oppForm{
		Title:        strings.TrimSpace(r.FormValue("title")),
		Venue:        r.Form["venue"],
		Duties:       strings.TrimSpace(r.FormValue("duties")),
		Skills:       strings.TrimSpace(r.FormValue("skills")),
		Time:         strings.TrimSpace(r.FormValue("time")),
		Requirements: strings.TrimSpace(r.FormValue("requirements")),
		Tags:         strings.TrimSpace(r.FormValue("tags")),
		MinAge:       strings.TrimSpace(r.FormValue("minAge")),
		BgCheck:      r.FormValue("bgCheckRequired") != "",
		Errors:       map[string]string{},
	}
}

func (f *oppForm) validate() bool {
	if f.Title == "" {
		f.Errors["title"] = "Title is required."
	}
	if len(f.Venue) == 0 {
		f.Errors["venue"] = "Pick at least one venue."
	} else {
		for _, v := range f.Venue {
			if !validVenue(v) {
				f.Errors["venue"] = "Unknown venue option."
				break
			}
		}
	}
	if f.MinAge != "" {
		if n, err := strconv.Atoi(f.MinAge); err != nil || n < 0 {
			f.Errors["minAge"] = "Minimum age must be a non-negative number."
		}
	}
	return len(f.Errors) == 0
}

func validVenue(v string) bool {
	for _, opt := range models.VenueOptions {
		if v == opt {
			return true
		}
	}
	return false
}

func (f *oppForm) payload() api.OpportunityCreate {
	minAge, _ := strconv.Atoi(f.MinAge)
	return api.OpportunityCreate{
		Title:           f.Title,
		Venue:           f.Venue,
		Duties:          splitLines(f.Duties),
		Skills:          splitList(f.Skills),
		Time:            f.Time,
		Requirements:    splitLines(f.Requirements),
		Tags:            splitList(f.Tags),
		MinAge:          minAge,
		BgCheckRequired: f.BgCheck,
	}
}

func oppFormFrom(o models.Opportunity) oppForm {
	return oppForm{
		ID:           o.ID,
		Title:        o.Title,
		Venue:        o.Venue,
		Duties:       strings.Join(o.Duties, "\n"),
		Skills:       strings.Join(o.Skills, ", "),
		Time:         o.Time,
		Requirements: strings.Join(o.Requirements, "\n"),
		Tags:         strings.Join(o.Tags, ", "),
		MinAge:       strconv.Itoa(o.MinAge),
		BgCheck:      o.BgCheckRequired,
		Errors:       map[string]string{},
	}
}

func oppPageData(r *http.Request, title string, f oppForm) map[string]any {
	return pageData(r, title, map[string]any{
		"Form":   f,
		"Venues": models.VenueOptions,
	})
}

// GET /admin/opportunities/new
func AdminOppNewForm(t *template.Template) http.HandlerFunc {
	render := page(t, "admin/opportunity_form.tmpl", "admin/opportunity_form.tmpl")
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, oppPageData(r, "New Opportunity", oppForm{Errors: map[string]string{}}))
	}
}

// POST /admin/opportunities/new
func AdminOppCreateSubmit(t *template.Template) http.HandlerFunc {
	render := page(t, "admin/opportunity_form.tmpl", "admin/opportunity_form.tmpl")
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := mustSession(w, r)
		if !ok {
			return
		}
		f := parseOppForm(r)
		if !f.validate() {
			render(w, oppPageData(r, "New Opportunity", f))
			return
		}
		if _, err := api.C().CreateOpportunity(r.Context(), s.Token, f.payload()); err != nil {
			if api.IsStatus(err, http.StatusUnauthorized) {
				redirectToLogin(w, r)
				return
			}
			f.Errors["form"] = err.Error()
			render(w, oppPageData(r, "New Opportunity", f))
			return
		}
		http.Redirect(w, r, "/admin/opportunities?ok=opp_created", http.StatusSeeOther)
	}
}

// GET /admin/opportunities/{oppID}/edit
func AdminOppEditForm(t *template.Template) http.HandlerFunc {
	render := page(t, "admin/opportunity_form.tmpl", "admin/opportunity_form.tmpl")
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "oppID")
		opp := findOpportunity(r, id)
		if opp == nil {
			http.NotFound(w, r)
			return
		}
		render(w, oppPageData(r, "Edit Opportunity", oppFormFrom(*opp)))
	}
}

// POST /admin/opportunities/{oppID}/edit
func AdminOppUpdateSubmit(t *template.Template) http.HandlerFunc {
	render := page(t, "admin/opportunity_form.tmpl", "admin/opportunity_form.tmpl")
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := mustSession(w, r)
		if !ok {
			return
		}
		id := chi.URLParam(r, "oppID")
		f := parseOppForm(r)
		f.ID = id
		if !f.validate() {
			render(w, oppPageData(r, "Edit Opportunity", f))
			return
		}
		if _, err := api.C().UpdateOpportunity(r.Context(), s.Token, id, f.payload()); err != nil {
			if api.IsStatus(err, http.StatusUnauthorized) {
				redirectToLogin(w, r)
				return
			}
			f.Errors["form"] = err.Error()
			render(w, oppPageData(r, "Edit Opportunity", f))
			return
		}
		http.Redirect(w, r, "/admin/opportunities?ok=opp_updated", http.StatusSeeOther)
	}
}

// POST /admin/opportunities/{oppID}/delete
func AdminOppDelete(w http.ResponseWriter, r *http.Request) {
	s, ok := mustSession(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "oppID")
	if err := api.C().DeleteOpportunity(r.Context(), s.Token, id); err != nil {
		if api.IsStatus(err, http.StatusUnauthorized) {
			redirectToLogin(w, r)
			return
		}
		http.Redirect(w, r, "/admin/opportunities?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/admin/opportunities?ok=opp_deleted", http.StatusSeeOther)
}

// GET /admin/opportunities/{oppID}/applicants
func AdminOppApplicants(t *template.Template) http.HandlerFunc {
	render := page(t, "admin/applicants.tmpl", "admin/applicants.tmpl")
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := mustSession(w, r)
		if !ok {
			return
		}
		id := chi.URLParam(r, "oppID")

		opp := findOpportunity(r, id)
		if opp == nil {
			http.NotFound(w, r)
			return
		}

		data := map[string]any{"Opp": *opp}
		apps, err := api.C().OpportunityApplications(r.Context(), s.Token, id)
		if err != nil {
			if api.IsStatus(err, http.StatusUnauthorized) {
				redirectToLogin(w, r)
				return
			}
			data["LoadError"] = err.Error()
		}
		data["Applicants"] = apps

		render(w, pageData(r, "Applicants: "+opp.Title, data))
	}
}

// GET /admin/applications lists every volunteer application, newest first
// per the backend's ordering.
func AdminApplications(t *template.Template) http.HandlerFunc {
	render := page(t, "admin/applications.tmpl", "admin/applications.tmpl")
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := mustSession(w, r)
		if !ok {
			return
		}

		data := map[string]any{}
		apps, err := api.C().VolunteerApplications(r.Context(), s.Token)
		if err != nil {
			if api.IsStatus(err, http.StatusUnauthorized) {
				redirectToLogin(w, r)
				return
			}
			data["LoadError"] = err.Error()
		}
		data["Applications"] = apps

		render(w, pageData(r, "Volunteer Applications", data))
	}
}

// POST /admin/applications/{appID}/delete
func AdminAppDelete(w http.ResponseWriter, r *http.Request) {
	s, ok := mustSession(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "appID")
	if err := api.C().DeleteVolunteerApp(r.Context(), s.Token, id); err != nil {
		if api.IsStatus(err, http.StatusUnauthorized) {
			redirectToLogin(w, r)
			return
		}
		http.Redirect(w, r, "/admin/applications?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/admin/applications?ok=app_deleted", http.StatusSeeOther)
}
