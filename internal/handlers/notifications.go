package handlers

import (
	"html/template"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/wonderhood/web/internal/api"
)

// GET /notifications
func NotificationsPage(t *template.Template) http.HandlerFunc {
	render := page(t, "notifications/list.tmpl", "notifications/list.tmpl")
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := mustSession(w, r)
		if !ok {
			return
		}

		data := map[string]any{}
		notifs, err := api.C().Notifications(r.Context(), s.Token)
		if err != nil {
			if api.IsStatus(err, http.StatusUnauthorized) {
				redirectToLogin(w, r)
				return
			}
			data["LoadError"] = err.Error()
		}

		unread := 0
		for _, n := range notifs {
			if !n.IsRead {
				unread++
			}
		}
		data["Notifications"] = notifs
		data["UnreadCount"] = unread

		render(w, pageData(r, "Notifications", data))
	}
}

// POST /notifications/{notifID}/read
func NotificationMarkRead(w http.ResponseWriter, r *http.Request) {
	s, ok := mustSession(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "notifID")
	if err := api.C().MarkNotificationRead(r.Context(), s.Token, id); err != nil {
		if api.IsStatus(err, http.StatusUnauthorized) {
			redirectToLogin(w, r)
			return
		}
		http.Redirect(w, r, "/notifications?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/notifications", http.StatusSeeOther)
}

// POST /notifications/read-all
func NotificationsMarkAllRead(w http.ResponseWriter, r *http.Request) {
	s, ok := mustSession(w, r)
	if !ok {
		return
	}
	if err := api.C().MarkAllNotificationsRead(r.Context(), s.Token); err != nil {
		if api.IsStatus(err, http.StatusUnauthorized) {
			redirectToLogin(w, r)
			return
		}
		http.Redirect(w, r, "/notifications?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/notifications?ok=all_read", http.StatusSeeOther)
}
