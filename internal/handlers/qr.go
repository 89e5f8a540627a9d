package handlers

import (
	"net/http"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/wonderhood/web/internal/api"
)

// GET /events/{eventID}/qr.png
// Share code for an event: scanning opens the event page directly.
func EventQR(w http.ResponseWriter, r *http.Request) {
	id, ok := eventIDFrom(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	// Only encode events that exist.
	if _, err := api.C().Event(r.Context(), id); err != nil {
		http.NotFound(w, r)
		return
	}

	scheme := "https"
	if r.TLS == nil {
		scheme = "http"
	}
	url := scheme + "://" + r.Host + "/events/" + id

	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "failed to generate qr", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
