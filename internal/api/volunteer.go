package api

import (
	"context"

	"github.com/wonderhood/web/internal/models"
)

// ApplyVolunteer submits a volunteer application. An empty opportunityID
// files a general application; otherwise the application is tied to that
// role. A 409 from the backend means this user already applied. That is
// the authoritative duplicate check, which the local submission lock only
// mirrors for UI purposes.
func (c *Client) ApplyVolunteer(ctx context.Context, token, opportunityID string, payload models.VolunteerCreate) (*models.VolunteerApp, error) {
	path := "/volunteer"
	if opportunityID != "" {
		path += "/" + opportunityID
	}
	var out struct {
		Volunteer models.VolunteerApp `json:"volunteer"`
	}
	if err := c.do(ctx, "POST", path, token, payload, &out); err != nil {
		return nil, err
	}
	return &out.Volunteer, nil
}

func (c *Client) VolunteerApplications(ctx context.Context, token string) ([]models.VolunteerApp, error) {
	var out []models.VolunteerApp
	if err := c.do(ctx, "GET", "/volunteer/applications", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteVolunteerApp(ctx context.Context, token, id string) error {
	return c.do(ctx, "DELETE", "/volunteer/"+id, token, nil, nil)
}
