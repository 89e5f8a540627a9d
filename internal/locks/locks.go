package locks

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// Namespace versions the lock storage, like the wh_v* localStorage key
// prefix the browser app used. Bump to invalidate all existing locks.
const Namespace = "wh_v1"

// Record marks one submitted volunteer application for one user. Scope is
// "general" for the org-wide application; role applications carry the
// opportunity ID. Advisory only: the backend's 409 on duplicate submission
// is the real guard, this just disables the button up front.
type Record struct {
	ID        uint   `gorm:"primaryKey"`
	Namespace string `gorm:"uniqueIndex:idx_lock_tuple;not null"`
	Subject   string `gorm:"uniqueIndex:idx_lock_tuple;not null"`
	Scope     string `gorm:"uniqueIndex:idx_lock_tuple;not null"` // general | opp
	OppID     string `gorm:"uniqueIndex:idx_lock_tuple"`
}

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

var defaultStore *Store

func Init(db *gorm.DB) {
	defaultStore = NewStore(db)
}

func Default() *Store {
	return defaultStore
}

// Subject derives the per-user lock identity from the bearer token's
// payload. The signature is NOT verified; the value only scopes advisory
// UI state, never authorization. Returns "" when no subject can be read,
// which disables locking for that caller.
func Subject(token string) string {
	if token == "" {
		return ""
	}
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return ""
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return ""
	}
	return sub
}

func (st *Store) mark(subject, scope, oppID string) error {
	if subject == "" {
		return errors.New("locks: empty subject")
	}
	rec := Record{Namespace: Namespace, Subject: subject, Scope: scope, OppID: oppID}
	err := st.db.Create(&rec).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	// SQLite reports the unique violation as a plain error; an existing
	// lock is not a failure either way.
	if err != nil && st.has(subject, scope, oppID) {
		return nil
	}
	return err
}

func (st *Store) has(subject, scope, oppID string) bool {
	if subject == "" {
		return false
	}
	var count int64
	st.db.Model(&Record{}).
		Where("namespace = ? AND subject = ? AND scope = ? AND opp_id = ?",
			Namespace, subject, scope, oppID).
		Count(&count)
	return count > 0
}

func (st *Store) MarkGeneralSubmitted(subject string) error {
	return st.mark(subject, "general", "")
}

func (st *Store) IsGeneralSubmitted(subject string) bool {
	return st.has(subject, "general", "")
}

func (st *Store) MarkOppSubmitted(subject, oppID string) error {
	return st.mark(subject, "opp", oppID)
}

func (st *Store) IsOppSubmitted(subject, oppID string) bool {
	return st.has(subject, "opp", oppID)
}
