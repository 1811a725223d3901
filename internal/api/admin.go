package api

import (
	"context"

	"pinopoly/internal/domain"
	"pinopoly/pkg/protocol"
)

type adjustRequest struct {
	PlayerID string `json:"player_id"`
	Amount   int    `json:"amount"`
	Reason   string `json:"reason,omitempty"`
}

// FinanceOverview fetches the admin-only view of the bank.
func (c *Client) FinanceOverview(ctx context.Context) (protocol.AdminFinanceOverview, error) {
	var out protocol.AdminFinanceOverview
	if err := c.getJSON(ctx, "/api/admin/finance/overview", &out); err != nil {
		return protocol.AdminFinanceOverview{}, err
	}
	return out, nil
}

// SetRates replaces the server's rate sheet.
func (c *Client) SetRates(ctx context.Context, rates protocol.InterestRates) error {
	return c.post(ctx, "/api/admin/finance/rates", rates, nil)
}

// AdjustBalance credits or debits a player's balance directly.
func (c *Client) AdjustBalance(ctx context.Context, playerID string, amount int, reason string) error {
	return c.post(ctx, "/api/admin/finance/adjust", adjustRequest{
		PlayerID: playerID,
		Amount:   amount,
		Reason:   reason,
	}, nil)
}

var _ domain.AdminAPI = (*Client)(nil)
