package api

import (
	"context"

	"github.com/wonderhood/web/internal/models"
)

func (c *Client) Notifications(ctx context.Context, token string) ([]models.Notification, error) {
	var out struct {
		Notifications []models.Notification `json:"Notifications"`
	}
	if err := c.do(ctx, "GET", "/notifications", token, nil, &out); err != nil {
		return nil, err
	}
	return out.Notifications, nil
}

func (c *Client) MarkNotificationRead(ctx context.Context, token, id string) error {
	body := map[string]bool{"isRead": true}
	return c.do(ctx, "PATCH", "/notifications/"+id, token, body, nil)
}

func (c *Client) MarkAllNotificationsRead(ctx context.Context, token string) error {
	return c.do(ctx, "PATCH", "/notifications/read-all", token, nil, nil)
}
