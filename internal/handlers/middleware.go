package handlers

import (
	"context"
	"net/http"
	"net/url"

	"github.com/wonderhood/web/internal/session"
)

type sessionCtxKey struct{}

// currentSession is a nil-safe lookup against the package session store.
// State already resolved by the auth middleware is reused from the request
// context so one request sees one consistent session.
func currentSession(r *http.Request) (*session.State, bool) {
	if s, ok := r.Context().Value(sessionCtxKey{}).(*session.State); ok && s != nil {
		return s, true
	}
	st := session.Default()
	if st == nil {
		return nil, false
	}
	return st.Current(r)
}

func withSession(r *http.Request, s *session.State) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), sessionCtxKey{}, s))
}

// RequireUser is middleware: any signed-in user may pass; everyone else is
// sent to the login page with a return path.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, ok := currentSession(r)
		if !ok {
			http.Redirect(w, r, "/login?next="+url.QueryEscape(r.URL.RequestURI()), http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, withSession(r, s))
	})
}

// RequireAdmin blocks access unless the session user carries the admin role.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, ok := currentSession(r)
		if !ok {
			http.Redirect(w, r, "/login?next="+url.QueryEscape(r.URL.RequestURI()), http.StatusSeeOther)
			return
		}
		if !s.IsAdmin() {
			http.Redirect(w, r, "/?error=admin_only", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, withSession(r, s))
	})
}

// redirectToLogin handles a backend 401 mid-flow: the stored token went
// stale, so drop the session and nudge the user to sign in again.
func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	if st := session.Default(); st != nil {
		st.Clear(w, r)
	}
	http.Redirect(w, r, "/login?next="+url.QueryEscape(r.URL.RequestURI())+"&error=login_required", http.StatusSeeOther)
}
