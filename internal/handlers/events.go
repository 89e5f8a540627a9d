package handlers

import (
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/wonderhood/web/internal/api"
	"github.com/wonderhood/web/internal/models"
)

// eventIDFrom pulls the event ID out of the route. Empty or ambiguous
// values (a stray comma-joined multi-value) are rejected up front so no
// backend call is ever made for a malformed ID.
func eventIDFrom(r *http.Request) (string, bool) {
	id := strings.TrimSpace(chi.URLParam(r, "eventID"))
	if id == "" || strings.Contains(id, ",") {
		return "", false
	}
	return id, true
}

type eventGroup struct {
	Name   string
	Events []models.Event
}

// groupByActivity orders events under their activity heading; events whose
// activity is unknown land in a trailing "More events" group.
func groupByActivity(activities []models.Activity, events []models.Event) []eventGroup {
	groups := make([]eventGroup, len(activities))
	byActivity := make(map[string]int, len(activities))
	for i, a := range activities {
		groups[i] = eventGroup{Name: a.Name}
		byActivity[a.ID] = i
	}
	var rest []models.Event
	for _, ev := range events {
		if i, ok := byActivity[ev.ActivityID]; ok {
			groups[i].Events = append(groups[i].Events, ev)
			continue
		}
		rest = append(rest, ev)
	}
	out := groups[:0]
	for _, g := range groups {
		if len(g.Events) > 0 {
			out = append(out, g)
		}
	}
	if len(rest) > 0 {
		name := "More events"
		if len(out) == 0 {
			name = ""
		}
		out = append(out, eventGroup{Name: name, Events: rest})
	}
	return out
}

// GET /events
func EventsList(t *template.Template) http.HandlerFunc {
	render := page(t, "events/list.tmpl", "events/list.tmpl")
	return func(w http.ResponseWriter, r *http.Request) {
		events, err := api.C().Events(r.Context())
		if err != nil {
			render(w, pageData(r, "Events", map[string]any{
				"LoadError": err.Error(),
			}))
			return
		}
		// Grouping is decorative; a failed activity fetch degrades to one
		// unnamed group.
		activities, _ := api.C().Activities(r.Context())
		render(w, pageData(r, "Events", map[string]any{
			"Groups": groupByActivity(activities, events),
		}))
	}
}

type eventDetailData struct {
	Event     *models.Event
	Children  []models.Child
	Enrolled  map[string]bool
	SpotsLeft int
}

// GET /events/{eventID}
func EventDetail(t *template.Template) http.HandlerFunc {
	render := page(t, "events/detail.tmpl", "events/detail.tmpl")
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := eventIDFrom(r)
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			render(w, pageData(r, "Event", map[string]any{
				"LoadError": "Invalid event ID",
			}))
			return
		}

		ev, err := api.C().Event(r.Context(), id)
		if err != nil {
			status := http.StatusBadGateway
			if api.IsStatus(err, http.StatusNotFound) {
				status = http.StatusNotFound
			}
			w.WriteHeader(status)
			render(w, pageData(r, "Event", map[string]any{
				"LoadError": err.Error(),
				"RetryURL":  r.URL.RequestURI(),
			}))
			return
		}

		data := eventDetailData{Event: ev, Enrolled: map[string]bool{}}
		for _, cid := range ev.ChildIDs {
			data.Enrolled[cid] = true
		}
		if data.SpotsLeft = ev.Limit - ev.Participants; data.SpotsLeft < 0 {
			data.SpotsLeft = 0
		}

		// A signed-in parent sees their children with enroll checkboxes.
		if s, ok := currentSession(r); ok && s.User.Role == models.RoleParent {
			if kids, err := api.C().Children(r.Context(), s.Token); err == nil {
				data.Children = kids
			}
		}

		render(w, pageData(r, ev.Name, map[string]any{
			"Detail": data,
		}))
	}
}

// POST /events/{eventID}/enroll
func EventEnroll(w http.ResponseWriter, r *http.Request) {
	id, ok := eventIDFrom(r)
	if !ok {
		http.Redirect(w, r, "/events?error=invalid_event", http.StatusSeeOther)
		return
	}
	_ = r.ParseForm()
	childIDs := r.Form["childId"]
	if len(childIDs) == 0 {
		http.Redirect(w, r, "/events/"+id+"?error=no_children", http.StatusSeeOther)
		return
	}

	s, ok := mustSession(w, r)
	if !ok {
		return
	}
	if _, err := api.C().Enroll(r.Context(), s.Token, id, childIDs); err != nil {
		if api.IsStatus(err, http.StatusUnauthorized) {
			redirectToLogin(w, r)
			return
		}
		if api.IsStatus(err, http.StatusConflict) {
			http.Redirect(w, r, "/events/"+id+"?error=event_full", http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, "/events/"+id+"?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/events/"+id+"?ok=enrolled", http.StatusSeeOther)
}

// POST /events/{eventID}/unenroll
func EventUnenroll(w http.ResponseWriter, r *http.Request) {
	id, ok := eventIDFrom(r)
	if !ok {
		http.Redirect(w, r, "/events?error=invalid_event", http.StatusSeeOther)
		return
	}
	_ = r.ParseForm()
	childIDs := r.Form["childId"]
	back := r.FormValue("back")
	if back == "" || !strings.HasPrefix(back, "/") {
		back = "/events/" + id
	}

	s, ok := mustSession(w, r)
	if !ok {
		return
	}
	if _, err := api.C().Unenroll(r.Context(), s.Token, id, childIDs); err != nil {
		if api.IsStatus(err, http.StatusUnauthorized) {
			redirectToLogin(w, r)
			return
		}
		http.Redirect(w, r, back+"?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, back+"?ok=unenrolled", http.StatusSeeOther)
}

// POST /admin/events/{eventID}/delete
func AdminEventDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := eventIDFrom(r)
	if !ok {
		http.Redirect(w, r, "/events?error=invalid_event", http.StatusSeeOther)
		return
	}
	s, ok := mustSession(w, r)
	if !ok {
		return
	}
	if err := api.C().DeleteEvent(r.Context(), s.Token, id); err != nil {
		if api.IsStatus(err, http.StatusUnauthorized) {
			redirectToLogin(w, r)
			return
		}
		http.Redirect(w, r, "/events?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/events?ok=event_deleted", http.StatusSeeOther)
}
