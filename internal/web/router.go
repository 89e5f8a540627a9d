package web

import (
	"html/template"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/wonderhood/web/internal/handlers"
)

func Router(templatesDir string, log *zap.Logger) http.Handler {
	handlers.TemplatesDir = templatesDir

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)

	tmpl := mustParseTemplates(templatesDir)

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	// Public pages
	r.Get("/", handlers.Home(tmpl))
	r.Get("/about", handlers.About(tmpl))
	r.Get("/terms", handlers.Terms(tmpl))
	r.Get("/privacy", handlers.Privacy(tmpl))
	r.Get("/healthz", handlers.Health)

	// Auth
	r.Get("/login", handlers.LoginForm(tmpl))
	r.Post("/login", handlers.LoginSubmit(tmpl))
	r.Post("/logout", handlers.Logout)
	r.Get("/signup", handlers.SignupForm(tmpl))
	r.Post("/signup", handlers.SignupSubmit(tmpl))
	r.Get("/forgot-password", handlers.ForgotPasswordForm(tmpl))
	r.Post("/forgot-password", handlers.ForgotPasswordSubmit)
	r.Get("/reset-password", handlers.ResetPasswordForm(tmpl))
	r.Post("/reset-password", handlers.ResetPasswordSubmit(tmpl))

	// Events
	r.Get("/events", handlers.EventsList(tmpl))
	r.Get("/events/{eventID}", handlers.EventDetail(tmpl))
	r.Get("/events/{eventID}/qr.png", handlers.EventQR)
	r.With(handlers.RequireUser).Post("/events/{eventID}/enroll", handlers.EventEnroll)
	r.With(handlers.RequireUser).Post("/events/{eventID}/unenroll", handlers.EventUnenroll)

	// Volunteering
	r.Get("/get-involved", handlers.GetInvolvedPage(tmpl))
	r.Get("/volunteer/opportunities/{oppID}", handlers.OpportunityDetail(tmpl))
	r.With(handlers.RequireUser).Get("/volunteer/apply", handlers.VolunteerApplyForm(tmpl))
	r.With(handlers.RequireUser).Post("/volunteer/apply", handlers.VolunteerApplySubmit(tmpl))

	// Signed-in account area
	r.Group(func(pr chi.Router) {
		pr.Use(handlers.RequireUser)

		pr.Get("/profile", handlers.ProfilePage(tmpl))
		pr.Post("/profile", handlers.ProfileUpdateSubmit)
		pr.Get("/profile/delete", handlers.DeleteAccountForm(tmpl))
		pr.Post("/profile/delete", handlers.DeleteAccountSubmit)

		pr.Get("/profile/children/new", handlers.ChildNewForm(tmpl))
		pr.Post("/profile/children/new", handlers.ChildCreateSubmit(tmpl))
		pr.Get("/profile/children/{childID}/edit", handlers.ChildEditForm(tmpl))
		pr.Post("/profile/children/{childID}/edit", handlers.ChildUpdateSubmit(tmpl))

		pr.Get("/notifications", handlers.NotificationsPage(tmpl))
		pr.Post("/notifications/read-all", handlers.NotificationsMarkAllRead)
		pr.Post("/notifications/{notifID}/read", handlers.NotificationMarkRead)
	})

	// Admin
	r.Route("/admin", func(ar chi.Router) {
		ar.Use(handlers.RequireUser)
		ar.Use(handlers.RequireAdmin)

		ar.Get("/opportunities", handlers.AdminOpportunities(tmpl))
		ar.Get("/opportunities/new", handlers.AdminOppNewForm(tmpl))
		ar.Post("/opportunities/new", handlers.AdminOppCreateSubmit(tmpl))
		ar.Get("/opportunities/{oppID}/edit", handlers.AdminOppEditForm(tmpl))
		ar.Post("/opportunities/{oppID}/edit", handlers.AdminOppUpdateSubmit(tmpl))
		ar.Post("/opportunities/{oppID}/delete", handlers.AdminOppDelete)
		ar.Get("/opportunities/{oppID}/applicants", handlers.AdminOppApplicants(tmpl))

		ar.Get("/applications", handlers.AdminApplications(tmpl))
		ar.Post("/applications/{appID}/delete", handlers.AdminAppDelete)

		ar.Post("/events/{eventID}/delete", handlers.AdminEventDelete)
	})

	return r
}

// requestLogger is a thin chi middleware over zap: one line per request.
func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Info("http",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("took", time.Since(start)),
				zap.String("reqId", middleware.GetReqID(r.Context())),
			)
		})
	}
}

func mustParseTemplates(baseDir string) *template.Template {
	p := template.New("").Funcs(handlers.TemplateFuncs())
	p = template.Must(p.ParseGlob(filepath.Join(baseDir, "layouts", "*.tmpl")))
	p = template.Must(p.ParseGlob(filepath.Join(baseDir, "partials", "*.tmpl")))
	return p
}
