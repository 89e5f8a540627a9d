package handlers

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/wonderhood/web/internal/models"
	"github.com/wonderhood/web/internal/session"
)

func initTestSessions(t *testing.T) {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "test.db")
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := gdb.AutoMigrate(&session.Record{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	session.Init(gdb, time.Hour)
}

func signedInRequest(t *testing.T, target string, user models.User) *http.Request {
	t.Helper()
	rec := httptest.NewRecorder()
	if _, err := session.Default().Start(rec, "tok-123", user); err != nil {
		t.Fatalf("start session: %v", err)
	}
	req := httptest.NewRequest("GET", target, nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestRequireUserRedirectsAnonymous(t *testing.T) {
	initTestSessions(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler reached without a session")
	})
	rec := httptest.NewRecorder()
	RequireUser(next).ServeHTTP(rec, httptest.NewRequest("GET", "/profile?tab=kids", nil))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	loc := rec.Header().Get("Location")
	if !strings.HasPrefix(loc, "/login?next=") || !strings.Contains(loc, "%2Fprofile") {
		t.Errorf("unexpected redirect %q", loc)
	}
}

func TestRequireUserPassesSignedIn(t *testing.T) {
	initTestSessions(t)

	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { reached = true })
	rec := httptest.NewRecorder()
	req := signedInRequest(t, "/profile", models.User{ID: "u1", FirstName: "Dana", Role: models.RoleParent})
	RequireUser(next).ServeHTTP(rec, req)

	if !reached {
		t.Fatalf("handler not reached; status %d location %q", rec.Code, rec.Header().Get("Location"))
	}
}

func TestRequireAdminBlocksParent(t *testing.T) {
	initTestSessions(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("admin handler reached by a parent")
	})
	rec := httptest.NewRecorder()
	req := signedInRequest(t, "/admin/opportunities", models.User{ID: "u1", Role: models.RoleParent})
	RequireAdmin(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/?error=admin_only" {
		t.Errorf("unexpected redirect %q", loc)
	}
}

func TestRequireAdminPassesAdmin(t *testing.T) {
	initTestSessions(t)

	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { reached = true })
	rec := httptest.NewRecorder()
	req := signedInRequest(t, "/admin/opportunities", models.User{ID: "u2", Role: models.RoleAdmin})
	RequireAdmin(next).ServeHTTP(rec, req)

	if !reached {
		t.Fatalf("admin not let through; status %d", rec.Code)
	}
}
