package api

import (
	"context"

	"pinopoly/internal/domain"
)

type loginRequest struct {
	Username string `json:"username"`
	PIN      string `json:"pin"`
}

type keyRequest struct {
	Key string `json:"key"`
}

// Login authenticates a player by username+PIN. The returned token is
// opaque and forwarded verbatim on later calls.
func (c *Client) Login(ctx context.Context, username, pin string) (domain.PlayerAuth, error) {
	var out domain.PlayerAuth
	if err := c.post(ctx, "/api/auth/login", loginRequest{Username: username, PIN: pin}, &out); err != nil {
		return domain.PlayerAuth{}, err
	}
	return out, nil
}

// Register creates a player account with username+PIN and logs it in.
func (c *Client) Register(ctx context.Context, username, pin string) (domain.PlayerAuth, error) {
	var out domain.PlayerAuth
	if err := c.post(ctx, "/api/auth/register", loginRequest{Username: username, PIN: pin}, &out); err != nil {
		return domain.PlayerAuth{}, err
	}
	return out, nil
}

// AdminLogin verifies an admin key server-side. The key itself is the
// credential; nothing is returned beyond success.
func (c *Client) AdminLogin(ctx context.Context, key string) error {
	return c.post(ctx, "/api/auth/admin", keyRequest{Key: key}, nil)
}

// DisplayInit initializes a display/kiosk session with a display key.
func (c *Client) DisplayInit(ctx context.Context, key string) error {
	return c.post(ctx, "/api/auth/display", keyRequest{Key: key}, nil)
}

var _ domain.AuthAPI = (*Client)(nil)
