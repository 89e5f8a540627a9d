package handlers

import (
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"github.com/wonderhood/web/internal/api"
	"github.com/wonderhood/web/internal/models"
	"github.com/wonderhood/web/internal/services"
	"github.com/wonderhood/web/internal/session"
)

type profileEvent struct {
	Event    models.Event
	Enrolled []models.Child
}

// GET /profile
func ProfilePage(t *template.Template) http.HandlerFunc {
	render := page(t, "profile/profile.tmpl", "profile/profile.tmpl")
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := mustSession(w, r)
		if !ok {
			return
		}

		// Refresh the stored snapshot from the backend; a stale token means
		// the session is done.
		user, err := api.C().Me(r.Context(), s.Token)
		if err != nil {
			if api.IsStatus(err, http.StatusUnauthorized) {
				redirectToLogin(w, r)
				return
			}
			render(w, pageData(r, "My Profile", map[string]any{
				"User":      s.User,
				"LoadError": err.Error(),
			}))
			return
		}
		_ = session.Default().SetUser(s.ID, *user)

		data := map[string]any{
			"User":      *user,
			"PhoneDisp": services.E164ToUS(user.PhoneNumber),
		}

		if user.Role == models.RoleParent {
			if kids, err := api.C().Children(r.Context(), s.Token); err == nil {
				data["Children"] = kids
			} else {
				data["ChildrenError"] = err.Error()
			}
			data["YourEvents"] = enrolledEvents(r, s)
		}

		if notifs, err := api.C().Notifications(r.Context(), s.Token); err == nil {
			unread := 0
			for _, n := range notifs {
				if !n.IsRead {
					unread++
				}
			}
			data["UnreadCount"] = unread
		}

		render(w, pageData(r, "My Profile", data))
	}
}

// enrolledEvents cross-references the event roster against this parent's
// children. Failures degrade to an empty list; the page stays usable.
func enrolledEvents(r *http.Request, s *session.State) []profileEvent {
	events, err := api.C().Events(r.Context())
	if err != nil {
		return nil
	}
	kids, err := api.C().Children(r.Context(), s.Token)
	if err != nil {
		return nil
	}
	byID := make(map[string]models.Child, len(kids))
	for _, k := range kids {
		byID[k.ID] = k
	}

	var out []profileEvent
	for _, ev := range events {
		var enrolled []models.Child
		for _, cid := range ev.ChildIDs {
			if k, ok := byID[cid]; ok {
				enrolled = append(enrolled, k)
			}
		}
		if len(enrolled) > 0 {
			out = append(out, profileEvent{Event: ev, Enrolled: enrolled})
		}
	}
	return out
}

// POST /profile
func ProfileUpdateSubmit(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	s, ok := mustSession(w, r)
	if !ok {
		return
	}

	firstName := strings.TrimSpace(r.FormValue("firstName"))
	lastName := strings.TrimSpace(r.FormValue("lastName"))
	email, okEmail := services.NormEmail(r.FormValue("email"))
	phone := services.ToE164US(r.FormValue("phoneNumber"))
	address := strings.TrimSpace(r.FormValue("address"))
	city := strings.TrimSpace(r.FormValue("city"))
	state := strings.TrimSpace(r.FormValue("state"))
	zip := services.OnlyDigits(r.FormValue("zipCode"))

	if firstName == "" || lastName == "" {
		http.Redirect(w, r, "/profile?error=missing", http.StatusSeeOther)
		return
	}
	if email == "" || !okEmail {
		http.Redirect(w, r, "/profile?error=invalid_email", http.StatusSeeOther)
		return
	}
	if phone == "" {
		http.Redirect(w, r, "/profile?error=invalid_phone", http.StatusSeeOther)
		return
	}

	patch := models.UserPatch{
		FirstName:   &firstName,
		LastName:    &lastName,
		Email:       &email,
		PhoneNumber: &phone,
		Address:     &address,
		City:        &city,
		State:       &state,
		ZipCode:     &zip,
	}
	user, err := api.C().UpdateUser(r.Context(), s.Token, patch)
	if err != nil {
		if api.IsStatus(err, http.StatusUnauthorized) {
			redirectToLogin(w, r)
			return
		}
		http.Redirect(w, r, "/profile?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
		return
	}

	// Adopt the server's representation wholesale.
	_ = session.Default().SetUser(s.ID, *user)
	http.Redirect(w, r, "/profile?ok=saved", http.StatusSeeOther)
}

// GET /profile/delete: confirmation page before account deletion.
func DeleteAccountForm(t *template.Template) http.HandlerFunc {
	render := page(t, "profile/delete_account.tmpl", "profile/delete_account.tmpl")
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, pageData(r, "Delete Account", nil))
	}
}

// POST /profile/delete
func DeleteAccountSubmit(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	if r.FormValue("confirm") != "DELETE" {
		http.Redirect(w, r, "/profile/delete?error="+url.QueryEscape("Type DELETE to confirm."), http.StatusSeeOther)
		return
	}
	s, ok := mustSession(w, r)
	if !ok {
		return
	}
	if err := api.C().DeleteUser(r.Context(), s.Token); err != nil {
		if api.IsStatus(err, http.StatusUnauthorized) {
			redirectToLogin(w, r)
			return
		}
		http.Redirect(w, r, "/profile/delete?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
		return
	}
	session.Default().Clear(w, r)
	http.Redirect(w, r, "/?ok=account_deleted", http.StatusSeeOther)
}
