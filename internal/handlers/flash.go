package handlers

import (
	"net/http"
	"strings"
)

type Flash struct {
	Kind string // "ok" or "error"
	Text string
}

var okText = map[string]string{
	"saved":           "Saved.",
	"child_saved":     "Child saved.",
	"enrolled":        "Enrollment confirmed.",
	"unenrolled":      "Enrollment removed.",
	"applied":         "Application submitted. Thank you!",
	"opp_created":     "Opportunity created.",
	"opp_updated":     "Opportunity updated.",
	"opp_deleted":     "Opportunity deleted.",
	"app_deleted":     "Application deleted.",
	"event_deleted":   "Event deleted.",
	"all_read":        "All notifications marked read.",
	"logged_out":      "You have been signed out.",
	"account_deleted": "Your account has been deleted.",
	"reset_sent":      "If that email exists, a reset link is on its way.",
	"password_reset":  "Password updated. You can sign in now.",
}

var errText = map[string]string{
	"missing":         "Please fill in the required fields.",
	"invalid_email":   "Invalid email address.",
	"invalid_phone":   "Please enter a valid 10-digit US phone number.",
	"invalid_age":     "Children must be between 10 and 18 years old.",
	"invalid_event":   "Invalid event ID",
	"login_required":  "Please sign in to continue.",
	"admin_only":      "That page is for admins.",
	"already_applied": "You have already applied to this opportunity.",
	"event_full":      "This event is full.",
	"no_children":     "Add a child to your profile before enrolling.",
}

// MakeFlash reads ?ok= / ?error= query keys (or explicit fallback strings)
// and resolves known keys to their display text.
func MakeFlash(r *http.Request, errStr, msgStr string) *Flash {
	q := r.URL.Query()

	if raw := strings.TrimSpace(q.Get("error")); raw != "" {
		if t, ok := errText[strings.ToLower(raw)]; ok {
			return &Flash{Kind: "error", Text: t}
		}
		return &Flash{Kind: "error", Text: raw}
	}
	if raw := strings.TrimSpace(q.Get("ok")); raw != "" {
		if t, ok := okText[strings.ToLower(raw)]; ok {
			return &Flash{Kind: "ok", Text: t}
		}
		return &Flash{Kind: "ok", Text: raw}
	}

	if errStr != "" {
		return &Flash{Kind: "error", Text: errStr}
	}
	if msgStr != "" {
		return &Flash{Kind: "ok", Text: msgStr}
	}
	return nil
}
