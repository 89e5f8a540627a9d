package locks

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

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

func signedToken(t *testing.T, sub string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   sub,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	s, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func TestOppLockPerOpportunity(t *testing.T) {
	st := NewStore(openTestDB(t))

	if err := st.MarkOppSubmitted("user-a", "opp1"); err != nil {
		t.Fatalf("mark: %v", err)
	}
	if !st.IsOppSubmitted("user-a", "opp1") {
		t.Error("opp1 should be locked after mark")
	}
	if st.IsOppSubmitted("user-a", "opp2") {
		t.Error("opp2 should not be locked")
	}
}

func TestLocksScopedPerSubject(t *testing.T) {
	st := NewStore(openTestDB(t))

	subA := Subject(signedToken(t, "user-a"))
	subB := Subject(signedToken(t, "user-b"))
	if subA == "" || subB == "" || subA == subB {
		t.Fatalf("bad subjects: %q %q", subA, subB)
	}

	if err := st.MarkGeneralSubmitted(subA); err != nil {
		t.Fatalf("mark general: %v", err)
	}
	if err := st.MarkOppSubmitted(subA, "opp1"); err != nil {
		t.Fatalf("mark opp: %v", err)
	}

	if !st.IsGeneralSubmitted(subA) || !st.IsOppSubmitted(subA, "opp1") {
		t.Error("subject A lost its own locks")
	}
	if st.IsGeneralSubmitted(subB) || st.IsOppSubmitted(subB, "opp1") {
		t.Error("subject B sees subject A's locks")
	}
}

func TestMarkIsIdempotent(t *testing.T) {
	st := NewStore(openTestDB(t))

	if err := st.MarkGeneralSubmitted("user-a"); err != nil {
		t.Fatalf("first mark: %v", err)
	}
	if err := st.MarkGeneralSubmitted("user-a"); err != nil {
		t.Errorf("second mark should be a no-op, got %v", err)
	}
}

func TestSubjectFromGarbageToken(t *testing.T) {
	if s := Subject("not-a-jwt"); s != "" {
		t.Errorf("Subject(garbage) = %q, want empty", s)
	}
	if s := Subject(""); s != "" {
		t.Errorf("Subject(\"\") = %q, want empty", s)
	}
}

func TestEmptySubjectNeverLocks(t *testing.T) {
	st := NewStore(openTestDB(t))

	if err := st.MarkGeneralSubmitted(""); err == nil {
		t.Error("marking with empty subject should fail")
	}
	if st.IsGeneralSubmitted("") {
		t.Error("empty subject should never report locked")
	}
}
