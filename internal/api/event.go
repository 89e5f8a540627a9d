package api

import (
	"context"

	"github.com/wonderhood/web/internal/models"
)

// Activities lists activity groupings with their nested events.
func (c *Client) Activities(ctx context.Context) ([]models.Activity, error) {
	var out []models.Activity
	if err := c.do(ctx, "GET", "/activity", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Events(ctx context.Context) ([]models.Event, error) {
	var out []models.Event
	if err := c.do(ctx, "GET", "/event", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Event(ctx context.Context, id string) (*models.Event, error) {
	var out models.Event
	if err := c.do(ctx, "GET", "/event/"+id, "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Enroll adds the given children to the event roster. The backend returns
// the updated event, mirrored straight into the page.
func (c *Client) Enroll(ctx context.Context, token, eventID string, childIDs []string) (*models.Event, error) {
	body := map[string][]string{"childIds": childIDs}
	var out models.Event
	if err := c.do(ctx, "PATCH", "/event/"+eventID+"/enroll", token, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Unenroll(ctx context.Context, token, eventID string, childIDs []string) (*models.Event, error) {
	body := map[string][]string{"childIds": childIDs}
	var out models.Event
	if err := c.do(ctx, "PATCH", "/event/"+eventID+"/unenroll", token, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteEvent(ctx context.Context, token, id string) error {
	return c.do(ctx, "DELETE", "/event/"+id, token, nil, nil)
}
