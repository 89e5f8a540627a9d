package handlers

import (
	"html/template"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/wonderhood/web/internal/session"
)

// TemplatesDir is the root of the template tree. The router overrides it
// from config before any page handler is constructed.
var TemplatesDir = "templates"

// pageData assembles the fields every layout expects plus per-page extras.
func pageData(r *http.Request, title string, extra map[string]any) map[string]any {
	data := map[string]any{
		"Title": title,
		"Flash": MakeFlash(r, "", ""),
	}
	if s, ok := currentSession(r); ok {
		data["IsLoggedIn"] = true
		data["UserName"] = s.User.FirstName
		data["IsAdmin"] = s.IsAdmin()
	} else {
		data["IsLoggedIn"] = false
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

// page pre-parses one page template over the shared set: Clone once at
// route construction, execute per request.
func page(t *template.Template, file, name string) func(http.ResponseWriter, map[string]any) {
	view := template.Must(t.Clone())
	template.Must(view.ParseFiles(filepath.Join(TemplatesDir, "pages", file)))
	return func(w http.ResponseWriter, data map[string]any) {
		if err := view.ExecuteTemplate(w, name, data); err != nil {
			http.Error(w, err.Error(), 500)
		}
	}
}

// mustSession fetches the signed-in state for a handler behind RequireUser.
// The session can still vanish between the middleware check and the handler
// body, so a miss here redirects to login rather than handing back nil.
func mustSession(w http.ResponseWriter, r *http.Request) (*session.State, bool) {
	s, ok := currentSession(r)
	if !ok {
		http.Redirect(w, r, "/login?next="+url.QueryEscape(r.URL.RequestURI())+"&error=login_required", http.StatusSeeOther)
		return nil, false
	}
	return s, true
}

// splitList splits comma-separated free-form input into trimmed non-empty
// items.
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// splitLines does the same for one-item-per-line textareas.
func splitLines(s string) []string {
	parts := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
