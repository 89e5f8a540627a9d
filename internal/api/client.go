package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Client issues authenticated JSON requests against the WonderHood backend.
// The backend is the single source of truth for every entity; the web tier
// keeps no cache, performs no retries, and surfaces every failure to the
// page that triggered it.
type Client struct {
	base  string
	httpc *http.Client
	log   *zap.Logger
}

// Error is a non-2xx backend response. The message always carries the HTTP
// status code and the server's detail (or the status text when the body had
// none), so handlers can show it verbatim.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	return fmt.Sprintf("API error %d: %s", e.Status, e.Detail)
}

// IsStatus reports whether err is a backend *Error with the given status.
func IsStatus(err error, status int) bool {
	ae, ok := err.(*Error)
	return ok && ae.Status == status
}

func NewClient(baseURL string, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		base:  strings.TrimRight(baseURL, "/"),
		httpc: &http.Client{Timeout: 10 * time.Second},
		log:   log,
	}
}

var defaultClient *Client

// Init configures the package-level client used by the handlers.
func Init(baseURL string, log *zap.Logger) {
	defaultClient = NewClient(baseURL, log)
}

// C returns the package-level client. Init must have been called.
func C() *Client {
	return defaultClient
}

// do performs one JSON round-trip. A bearer token is attached only when one
// is supplied. out may be nil when the caller ignores the response body.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.asError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// doForm posts application/x-www-form-urlencoded data (the token endpoint
// takes form credentials, not JSON).
func (c *Client) doForm(ctx context.Context, path string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.asError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) asError(resp *http.Response) error {
	detail := http.StatusText(resp.StatusCode)
	var payload struct {
		Detail string `json:"detail"`
	}
	// Error body is best-effort: a non-JSON body falls back to status text.
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Detail != "" {
		detail = payload.Detail
	}
	err := &Error{Status: resp.StatusCode, Detail: detail}
	c.log.Debug("backend error",
		zap.String("url", resp.Request.URL.Path),
		zap.Int("status", resp.StatusCode),
		zap.String("detail", detail))
	return err
}
