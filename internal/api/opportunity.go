package api

import (
	"context"

	"github.com/wonderhood/web/internal/models"
)

type OpportunityCreate struct {
	Title           string   `json:"title"`
	Venue           []string `json:"venue"`
	Duties          []string `json:"duties"`
	Skills          []string `json:"skills"`
	Time            string   `json:"time"`
	Requirements    []string `json:"requirements"`
	Tags            []string `json:"tags,omitempty"`
	MinAge          int      `json:"minAge"`
	BgCheckRequired bool     `json:"bgCheckRequired"`
}

func (c *Client) Opportunities(ctx context.Context) ([]models.Opportunity, error) {
	var out []models.Opportunity
	if err := c.do(ctx, "GET", "/opportunities", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateOpportunity(ctx context.Context, token string, payload OpportunityCreate) (*models.Opportunity, error) {
	var out models.Opportunity
	if err := c.do(ctx, "POST", "/opportunities", token, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateOpportunity(ctx context.Context, token, id string, payload OpportunityCreate) (*models.Opportunity, error) {
	var out models.Opportunity
	if err := c.do(ctx, "PATCH", "/opportunities/"+id, token, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteOpportunity(ctx context.Context, token, id string) error {
	return c.do(ctx, "DELETE", "/opportunities/"+id, token, nil, nil)
}

// OpportunityApplications lists the volunteer applications attached to one
// opportunity (admin only).
func (c *Client) OpportunityApplications(ctx context.Context, token, id string) ([]models.VolunteerApp, error) {
	var out []models.VolunteerApp
	if err := c.do(ctx, "GET", "/opportunities/"+id+"/applications", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
