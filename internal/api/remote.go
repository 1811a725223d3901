package api

import (
	"context"

	"pinopoly/internal/domain"
	"pinopoly/pkg/protocol"
)

// Status reports whether the tunnel is up and its public URL.
func (c *Client) Status(ctx context.Context) (protocol.TunnelStatus, error) {
	var out protocol.TunnelStatus
	if err := c.getJSON(ctx, "/api/remote/status", &out); err != nil {
		return protocol.TunnelStatus{}, err
	}
	return out, nil
}

// Start asks the server to bring the tunnel up. The call returns once the
// server accepts it; poll Status for the public URL.
func (c *Client) Start(ctx context.Context) (protocol.TunnelStatus, error) {
	var out protocol.TunnelStatus
	if err := c.post(ctx, "/api/remote/start", nil, &out); err != nil {
		return protocol.TunnelStatus{}, err
	}
	return out, nil
}

// Stop tears the tunnel down.
func (c *Client) Stop(ctx context.Context) error {
	return c.post(ctx, "/api/remote/stop", nil, nil)
}

// URL returns the tunnel's public URL, if running.
func (c *Client) URL(ctx context.Context) (string, error) {
	var out struct {
		URL string `json:"url"`
	}
	if err := c.getJSON(ctx, "/api/remote/url", &out); err != nil {
		return "", err
	}
	return out.URL, nil
}

var _ domain.RemoteAPI = (*Client)(nil)
