package handlers

import (
	"html/template"
	"net/http"
)

func Home(t *template.Template) http.HandlerFunc {
	render := page(t, "home.tmpl", "home.tmpl")
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, pageData(r, "WonderHood", nil))
	}
}

func About(t *template.Template) http.HandlerFunc {
	render := page(t, "about.tmpl", "about.tmpl")
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, pageData(r, "About Us", nil))
	}
}

func Terms(t *template.Template) http.HandlerFunc {
	render := page(t, "terms.tmpl", "terms.tmpl")
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, pageData(r, "Terms of Service", nil))
	}
}

func Privacy(t *template.Template) http.HandlerFunc {
	render := page(t, "privacy.tmpl", "privacy.tmpl")
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, pageData(r, "Privacy Policy", nil))
	}
}

func Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
