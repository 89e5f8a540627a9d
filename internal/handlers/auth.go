package handlers

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/wonderhood/web/internal/api"
	"github.com/wonderhood/web/internal/services"
	"github.com/wonderhood/web/internal/session"
)

// GET /login
func LoginForm(t *template.Template) http.HandlerFunc {
	render := page(t, "auth/login.tmpl", "auth/login.tmpl")
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := currentSession(r); ok {
			http.Redirect(w, r, "/profile", http.StatusSeeOther)
			return
		}
		render(w, pageData(r, "Sign In", map[string]any{
			"Next": r.URL.Query().Get("next"),
		}))
	}
}

// POST /login
func LoginSubmit(t *template.Template) http.HandlerFunc {
	render := page(t, "auth/login.tmpl", "auth/login.tmpl")
	return func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		email, okEmail := services.NormEmail(r.FormValue("email"))
		password := r.FormValue("password")
		next := r.FormValue("next")

		fail := func(msg string) {
			render(w, pageData(r, "Sign In", map[string]any{
				"Next":  next,
				"Email": email,
				"Flash": &Flash{Kind: "error", Text: msg},
			}))
		}

		if email == "" || !okEmail || password == "" {
			fail("Email and password are required.")
			return
		}

		token, err := api.C().Login(r.Context(), email, password)
		if err != nil {
			fail(loginErrText(err))
			return
		}

		// The token endpoint returns only the token; the user snapshot
		// comes from a follow-up fetch before the session is created, so
		// both are persisted together.
		user, err := api.C().Me(r.Context(), token)
		if err != nil {
			fail(err.Error())
			return
		}
		if _, err := session.Default().Start(w, token, *user); err != nil {
			fail("Could not start a session: " + err.Error())
			return
		}

		if next == "" || !strings.HasPrefix(next, "/") {
			next = "/profile"
		}
		http.Redirect(w, r, next, http.StatusSeeOther)
	}
}

func loginErrText(err error) string {
	if api.IsStatus(err, http.StatusUnauthorized) {
		return "Incorrect email or password."
	}
	return err.Error()
}

// POST /logout
func Logout(w http.ResponseWriter, r *http.Request) {
	session.Default().Clear(w, r)
	http.Redirect(w, r, "/?ok=logged_out", http.StatusSeeOther)
}

// GET /forgot-password
func ForgotPasswordForm(t *template.Template) http.HandlerFunc {
	render := page(t, "auth/forgot_password.tmpl", "auth/forgot_password.tmpl")
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, pageData(r, "Reset Password", nil))
	}
}

// POST /forgot-password
func ForgotPasswordSubmit(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	email, ok := services.NormEmail(r.FormValue("email"))
	if email == "" || !ok {
		http.Redirect(w, r, "/forgot-password?error=invalid_email", http.StatusSeeOther)
		return
	}
	// Deliberately the same outcome whether or not the email exists.
	_ = api.C().ForgotPassword(r.Context(), email)
	http.Redirect(w, r, "/login?ok=reset_sent", http.StatusSeeOther)
}

// GET /reset-password?token=...
func ResetPasswordForm(t *template.Template) http.HandlerFunc {
	render := page(t, "auth/reset_password.tmpl", "auth/reset_password.tmpl")
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, pageData(r, "Choose a New Password", map[string]any{
			"ResetToken": r.URL.Query().Get("token"),
		}))
	}
}

// POST /reset-password
func ResetPasswordSubmit(t *template.Template) http.HandlerFunc {
	render := page(t, "auth/reset_password.tmpl", "auth/reset_password.tmpl")
	return func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		resetToken := r.FormValue("token")
		password := r.FormValue("password")

		fail := func(msg string) {
			render(w, pageData(r, "Choose a New Password", map[string]any{
				"ResetToken": resetToken,
				"Flash":      &Flash{Kind: "error", Text: msg},
			}))
		}
		if resetToken == "" {
			fail("This reset link is missing its token. Request a new one.")
			return
		}
		if len(password) < 8 {
			fail("Password must be at least 8 characters.")
			return
		}
		if password != r.FormValue("confirm") {
			fail("Passwords do not match.")
			return
		}
		if err := api.C().ResetPassword(r.Context(), resetToken, password); err != nil {
			fail(err.Error())
			return
		}
		http.Redirect(w, r, "/login?ok=password_reset", http.StatusSeeOther)
	}
}
