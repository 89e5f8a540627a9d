package handlers

import (
	"net/http/httptest"
	"testing"
)

func TestMakeFlashKnownKeys(t *testing.T) {
	r := httptest.NewRequest("GET", "/events?error=invalid_event", nil)
	f := MakeFlash(r, "", "")
	if f == nil || f.Kind != "error" || f.Text != "Invalid event ID" {
		t.Fatalf("got %+v, want error flash with 'Invalid event ID'", f)
	}

	r = httptest.NewRequest("GET", "/?ok=logged_out", nil)
	f = MakeFlash(r, "", "")
	if f == nil || f.Kind != "ok" || f.Text != "You have been signed out." {
		t.Fatalf("got %+v", f)
	}
}

func TestMakeFlashRawFallback(t *testing.T) {
	r := httptest.NewRequest("GET", "/?error=API%20error%20404%3A%20Not%20found", nil)
	f := MakeFlash(r, "", "")
	if f == nil || f.Kind != "error" || f.Text != "API error 404: Not found" {
		t.Fatalf("got %+v", f)
	}
}

func TestMakeFlashErrorWinsOverOK(t *testing.T) {
	r := httptest.NewRequest("GET", "/?ok=saved&error=missing", nil)
	f := MakeFlash(r, "", "")
	if f == nil || f.Kind != "error" {
		t.Fatalf("got %+v, want the error to win", f)
	}
}

func TestMakeFlashExplicitFallbacks(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	if f := MakeFlash(r, "", ""); f != nil {
		t.Fatalf("expected nil flash, got %+v", f)
	}
	if f := MakeFlash(r, "boom", "yay"); f == nil || f.Kind != "error" || f.Text != "boom" {
		t.Fatalf("got %+v", f)
	}
	if f := MakeFlash(r, "", "yay"); f == nil || f.Kind != "ok" || f.Text != "yay" {
		t.Fatalf("got %+v", f)
	}
}
