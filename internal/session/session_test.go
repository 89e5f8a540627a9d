package session

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/wonderhood/web/internal/models"
)

// openTestDB returns an isolated in-file SQLite database in a temp directory.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "test.db")
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := gdb.AutoMigrate(&Record{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return gdb
}

func requestWithCookie(rec *httptest.ResponseRecorder) *http.Request {
	req := httptest.NewRequest("GET", "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestStartThenCurrentRoundTrip(t *testing.T) {
	st := NewStore(openTestDB(t), time.Hour)

	rec := httptest.NewRecorder()
	user := models.User{ID: "u1", FirstName: "Jane", Role: models.RoleParent}
	if _, err := st.Start(rec, "tok-1", user); err != nil {
		t.Fatalf("start: %v", err)
	}

	state, ok := st.Current(requestWithCookie(rec))
	if !ok {
		t.Fatal("expected a live session")
	}
	if state.Token != "tok-1" {
		t.Errorf("Token = %q, want tok-1", state.Token)
	}
	if state.User.FirstName != "Jane" {
		t.Errorf("User.FirstName = %q, want Jane", state.User.FirstName)
	}
	if state.IsAdmin() {
		t.Error("parent session reported as admin")
	}
}

func TestTokenAndUserPersistTogether(t *testing.T) {
	gdb := openTestDB(t)
	st := NewStore(gdb, time.Hour)

	rec := httptest.NewRecorder()
	state, err := st.Start(rec, "tok-2", models.User{ID: "u2", FirstName: "Ann"})
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	// A single row always carries both halves of the session.
	var row Record
	if err := gdb.First(&row, "id = ?", state.ID).Error; err != nil {
		t.Fatalf("load row: %v", err)
	}
	if row.Token == "" || row.UserJSON == "" {
		t.Errorf("partial persistence: token=%q user=%q", row.Token, row.UserJSON)
	}

	if err := st.SetUser(state.ID, models.User{ID: "u2", FirstName: "Anne"}); err != nil {
		t.Fatalf("set user: %v", err)
	}
	got, ok := st.Current(requestWithCookie(rec))
	if !ok {
		t.Fatal("session vanished after SetUser")
	}
	if got.User.FirstName != "Anne" {
		t.Errorf("User.FirstName = %q, want Anne", got.User.FirstName)
	}
	if got.Token != "tok-2" {
		t.Errorf("Token changed to %q", got.Token)
	}
}

func TestExpiredSessionIsSignedOut(t *testing.T) {
	gdb := openTestDB(t)
	st := NewStore(gdb, time.Hour)

	rec := httptest.NewRecorder()
	state, err := st.Start(rec, "tok-3", models.User{ID: "u3"})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	gdb.Model(&Record{}).Where("id = ?", state.ID).
		Update("expires_at", time.Now().Add(-time.Minute))

	if _, ok := st.Current(requestWithCookie(rec)); ok {
		t.Error("expired session should behave as signed out")
	}

	var count int64
	gdb.Model(&Record{}).Count(&count)
	if count != 0 {
		t.Errorf("expired row not removed, count = %d", count)
	}
}

func TestClearDeletesRow(t *testing.T) {
	gdb := openTestDB(t)
	st := NewStore(gdb, time.Hour)

	rec := httptest.NewRecorder()
	if _, err := st.Start(rec, "tok-4", models.User{ID: "u4"}); err != nil {
		t.Fatalf("start: %v", err)
	}

	out := httptest.NewRecorder()
	st.Clear(out, requestWithCookie(rec))

	var count int64
	gdb.Model(&Record{}).Count(&count)
	if count != 0 {
		t.Errorf("session row survived Clear, count = %d", count)
	}
	cleared := false
	for _, c := range out.Result().Cookies() {
		if c.Name == "wh_session" && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("Clear did not expire the cookie")
	}
}

func TestDeleteExpired(t *testing.T) {
	gdb := openTestDB(t)
	st := NewStore(gdb, time.Hour)

	gdb.Create(&Record{ID: "live", ExpiresAt: time.Now().Add(time.Hour)})
	gdb.Create(&Record{ID: "dead", ExpiresAt: time.Now().Add(-time.Hour)})

	n, err := st.DeleteExpired()
	if err != nil {
		t.Fatalf("delete expired: %v", err)
	}
	if n != 1 {
		t.Errorf("removed %d rows, want 1", n)
	}
	var count int64
	gdb.Model(&Record{}).Count(&count)
	if count != 1 {
		t.Errorf("remaining rows = %d, want 1", count)
	}
}
