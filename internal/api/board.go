package api

import (
	"context"
	"net/url"

	"pinopoly/internal/domain"
	"pinopoly/pkg/protocol"
)

// Properties fetches the public board layout.
func (c *Client) Properties(ctx context.Context) ([]protocol.Property, error) {
	var out []protocol.Property
	if err := c.getJSON(ctx, "/public/board/properties", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Players fetches the public player roster.
func (c *Client) Players(ctx context.Context) ([]protocol.Player, error) {
	var out []protocol.Player
	if err := c.getJSON(ctx, "/public/board/players", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PlayerProperties lists the properties a player owns.
func (c *Client) PlayerProperties(ctx context.Context, playerID string) ([]protocol.Property, error) {
	var out []protocol.Property
	if err := c.getJSON(ctx, "/api/player/"+url.PathEscape(playerID)+"/properties", &out); err != nil {
		return nil, err
	}
	return out, nil
}

var _ domain.BoardAPI = (*Client)(nil)
