package api

import (
	"context"
	"net/url"

	"github.com/wonderhood/web/internal/models"
)

type SignupResponse struct {
	User    models.User `json:"user"`
	Token   string      `json:"token"`
	Message string      `json:"message"`
}

// Signup registers a new account. The backend returns the created user and
// an initial bearer token.
func (c *Client) Signup(ctx context.Context, payload models.SignupPayload) (*SignupResponse, error) {
	var out SignupResponse
	if err := c.do(ctx, "POST", "/auth/signup", "", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges credentials for a bearer token. The token endpoint speaks
// OAuth2 password-grant form encoding with the email as username.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	var out struct {
		AccessToken string `json:"access_token"`
	}
	if err := c.doForm(ctx, "/auth/token", form, &out); err != nil {
		return "", err
	}
	return out.AccessToken, nil
}

// Me fetches the user the token belongs to. This is the only trustworthy
// check that a stored token is still valid.
func (c *Client) Me(ctx context.Context, token string) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, "GET", "/auth/users/me", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.do(ctx, "POST", "/password_reset/forgot-password", "", body, nil)
}

func (c *Client) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	body := map[string]string{"token": resetToken, "password": newPassword}
	return c.do(ctx, "POST", "/password_reset/reset-password", "", body, nil)
}
