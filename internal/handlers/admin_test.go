package handlers

import (
	"testing"

	"github.com/wonderhood/web/internal/models"
)

func TestMatchOpportunity(t *testing.T) {
	opp := models.Opportunity{
		Title:  "Trail Cleanup Lead",
		Tags:   []string{"outdoors", "service"},
		Skills: []string{"First Aid"},
	}
	cases := []struct {
		needle string
		want   bool
	}{
		{"", true},
		{"trail", true},
		{"CLEANUP", true},
		{"outdoors", true},
		{"first aid", true},
		{"cooking", false},
	}
	for _, c := range cases {
		if got := matchOpportunity(opp, c.needle); got != c.want {
			t.Errorf("matchOpportunity(%q) = %v, want %v", c.needle, got, c.want)
		}
	}
}
