package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"go.uber.org/zap"

	"pinopoly/internal/domain"
)

// Header names the server validates. The client only stores and forwards
// these values; it never interprets them.
const (
	headerPlayerID   = "X-Player-ID"
	headerToken      = "X-Player-Token"
	headerAdminKey   = "X-Admin-Key"
	headerDisplayKey = "X-Display-Key"
)

// Client talks to the game server's HTTP surface.
type Client struct {
	Base string
	HTTP *http.Client

	log *zap.Logger

	mu      sync.RWMutex
	profile domain.Profile
}

// New returns a Client for the server at base. A nil httpClient falls back
// to http.DefaultClient; a nil logger falls back to zap.NewNop.
func New(base string, httpClient *http.Client, log *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{Base: base, HTTP: httpClient, log: log}
}

// UseProfile sets the credentials forwarded on subsequent requests.
func (c *Client) UseProfile(p domain.Profile) {
	c.mu.Lock()
	c.profile = p
	c.mu.Unlock()
}

func (c *Client) setCredentials(req *http.Request) {
	c.mu.RLock()
	p := c.profile
	c.mu.RUnlock()

	if p.PlayerID != "" {
		req.Header.Set(headerPlayerID, p.PlayerID)
	}
	if p.Token != "" {
		req.Header.Set(headerToken, p.Token)
	}
	if p.AdminKey != "" {
		req.Header.Set(headerAdminKey, p.AdminKey)
	}
	if p.DisplayKey != "" {
		req.Header.Set(headerDisplayKey, p.DisplayKey)
	}
}

func (c *Client) do(req *http.Request, method, path string, out any) error {
	req.Header.Set("Accept", "application/json")
	c.setCredentials(req)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		c.log.Debug("api request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode))
		return fmt.Errorf("api %s %s: %s", method, path, resp.Status)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Base+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, "get", path, out)
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	buf := new(bytes.Buffer)
	if in != nil {
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, "post", path, out)
}
