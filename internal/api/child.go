package api

import (
	"context"

	"github.com/wonderhood/web/internal/models"
)

// Children lists the children attached to the current user.
func (c *Client) Children(ctx context.Context, token string) ([]models.Child, error) {
	var out []models.Child
	if err := c.do(ctx, "GET", "/child/current", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateChild(ctx context.Context, token string, payload models.ChildPayload) (*models.Child, error) {
	var out models.Child
	if err := c.do(ctx, "POST", "/child", token, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateChild(ctx context.Context, token, id string, payload models.ChildPayload) (*models.Child, error) {
	var out models.Child
	if err := c.do(ctx, "PATCH", "/child/"+id, token, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
