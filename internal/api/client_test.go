package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/wonderhood/web/internal/models"
)

func TestErrorCarriesStatusAndDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Not found"})
	}))
	defer server.Close()

	c := NewClient(server.URL, nil)
	_, err := c.Event(context.Background(), "missing")
	if err == nil {
		t.Fatal("expected error for 404 response")
	}
	ae, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if ae.Status != 404 {
		t.Errorf("Status = %d, want 404", ae.Status)
	}
	msg := err.Error()
	if !strings.Contains(msg, "404") || !strings.Contains(msg, "Not found") {
		t.Errorf("message %q should contain both the status and the detail", msg)
	}
}

func TestErrorFallsBackToStatusText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream says no")) // not JSON
	}))
	defer server.Close()

	c := NewClient(server.URL, nil)
	_, err := c.Events(context.Background())
	if err == nil {
		t.Fatal("expected error for 502 response")
	}
	if !strings.Contains(err.Error(), "Bad Gateway") {
		t.Errorf("message %q should fall back to the status text", err.Error())
	}
}

func TestBearerTokenAttachedOnlyWhenPresent(t *testing.T) {
	var sawAuth []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawAuth = append(sawAuth, r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode([]models.Event{})
	}))
	defer server.Close()

	c := NewClient(server.URL, nil)
	if _, err := c.Events(context.Background()); err != nil {
		t.Fatalf("events: %v", err)
	}
	if _, err := c.Children(context.Background(), "tok-abc"); err != nil {
		t.Fatalf("children: %v", err)
	}

	if sawAuth[0] != "" {
		t.Errorf("unauthenticated call sent Authorization %q", sawAuth[0])
	}
	if sawAuth[1] != "Bearer tok-abc" {
		t.Errorf("authenticated call sent Authorization %q, want %q", sawAuth[1], "Bearer tok-abc")
	}
}

func TestLoginPostsFormEncodedCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
			t.Errorf("Content-Type = %q", ct)
		}
		r.ParseForm()
		if r.PostFormValue("username") != "jane@example.com" {
			t.Errorf("username = %q", r.PostFormValue("username"))
		}
		json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-xyz"})
	}))
	defer server.Close()

	c := NewClient(server.URL, nil)
	tok, err := c.Login(context.Background(), "jane@example.com", "hunter22")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if tok != "tok-xyz" {
		t.Errorf("token = %q, want %q", tok, "tok-xyz")
	}
}

func TestApplyVolunteerPathSelection(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		json.NewEncoder(w).Encode(map[string]models.VolunteerApp{"volunteer": {ID: "v1"}})
	}))
	defer server.Close()

	c := NewClient(server.URL, nil)
	ctx := context.Background()
	if _, err := c.ApplyVolunteer(ctx, "tok", "", models.VolunteerCreate{}); err != nil {
		t.Fatalf("general apply: %v", err)
	}
	if _, err := c.ApplyVolunteer(ctx, "tok", "opp1", models.VolunteerCreate{}); err != nil {
		t.Fatalf("role apply: %v", err)
	}

	if paths[0] != "/volunteer" {
		t.Errorf("general application path = %q, want /volunteer", paths[0])
	}
	if paths[1] != "/volunteer/opp1" {
		t.Errorf("role application path = %q, want /volunteer/opp1", paths[1])
	}
}
