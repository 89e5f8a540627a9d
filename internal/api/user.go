package api

import (
	"context"

	"github.com/wonderhood/web/internal/models"
)

func (c *Client) User(ctx context.Context, token string) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, "GET", "/user", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUser patches the profile and returns the backend's updated
// representation, which callers should adopt wholesale.
func (c *Client) UpdateUser(ctx context.Context, token string, patch models.UserPatch) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, "PATCH", "/user", token, patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteUser(ctx context.Context, token string) error {
	return c.do(ctx, "DELETE", "/user", token, nil, nil)
}
