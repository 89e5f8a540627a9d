package session

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wonderhood/web/internal/models"
)

const cookieName = "wh_session"

// Record is one signed-in browser session. Token and the user snapshot live
// in the same row, so a login or profile update persists both in a single
// write and they can never drift apart.
type Record struct {
	ID        string `gorm:"primaryKey"`
	Token     string
	UserJSON  string
	CreatedAt time.Time
	UpdatedAt time.Time
	ExpiresAt time.Time `gorm:"index"`
}

// State is the decoded session handed to handlers.
type State struct {
	ID    string
	Token string
	User  models.User
}

func (s *State) IsAdmin() bool {
	return s.User.Role == models.RoleAdmin
}

func (s *State) FullName() string {
	return s.User.FirstName + " " + s.User.LastName
}

type Store struct {
	db  *gorm.DB
	ttl time.Duration
}

func NewStore(db *gorm.DB, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &Store{db: db, ttl: ttl}
}

var defaultStore *Store

// Init configures the package-level store used by the handlers.
func Init(db *gorm.DB, ttl time.Duration) {
	defaultStore = NewStore(db, ttl)
}

func Default() *Store {
	return defaultStore
}

// Start creates a session for the given token and user and sets the cookie.
func (st *Store) Start(w http.ResponseWriter, token string, user models.User) (*State, error) {
	uj, err := json.Marshal(user)
	if err != nil {
		return nil, err
	}
	rec := Record{
		ID:        uuid.NewString(),
		Token:     token,
		UserJSON:  string(uj),
		ExpiresAt: time.Now().Add(st.ttl),
	}
	if err := st.db.Create(&rec).Error; err != nil {
		return nil, err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    rec.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  rec.ExpiresAt,
	})
	return &State{ID: rec.ID, Token: token, User: user}, nil
}

// Current loads the session referenced by the request cookie. Expired or
// unknown sessions behave as signed out.
func (st *Store) Current(r *http.Request) (*State, bool) {
	c, err := r.Cookie(cookieName)
	if err != nil || c.Value == "" {
		return nil, false
	}
	var rec Record
	if err := st.db.First(&rec, "id = ?", c.Value).Error; err != nil {
		return nil, false
	}
	if time.Now().After(rec.ExpiresAt) {
		_ = st.db.Delete(&Record{}, "id = ?", rec.ID).Error
		return nil, false
	}
	var user models.User
	if err := json.Unmarshal([]byte(rec.UserJSON), &user); err != nil {
		return nil, false
	}
	return &State{ID: rec.ID, Token: rec.Token, User: user}, true
}

// SetUser replaces the stored user snapshot after a profile change or a
// fresh /auth/users/me fetch. Single-row update keeps token and user
// consistent.
func (st *Store) SetUser(id string, user models.User) error {
	uj, err := json.Marshal(user)
	if err != nil {
		return err
	}
	res := st.db.Model(&Record{}).Where("id = ?", id).Update("user_json", string(uj))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("session not found")
	}
	return nil
}

// Clear deletes the session row and expires the cookie.
func (st *Store) Clear(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
		_ = st.db.Delete(&Record{}, "id = ?", c.Value).Error
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})
}

// DeleteExpired removes sessions past their expiry. Returns rows removed.
func (st *Store) DeleteExpired() (int64, error) {
	res := st.db.Delete(&Record{}, "expires_at < ?", time.Now())
	return res.RowsAffected, res.Error
}
