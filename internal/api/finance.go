package api

import (
	"context"

	"pinopoly/internal/domain"
	"pinopoly/pkg/protocol"
)

type repayRequest struct {
	LoanID string `json:"loan_id"`
	Amount int    `json:"amount"`
}

type withdrawRequest struct {
	CDID string `json:"cd_id"`
}

// Portfolio lists every instrument the authenticated player holds.
func (c *Client) Portfolio(ctx context.Context) (protocol.Portfolio, error) {
	var out protocol.Portfolio
	if err := c.getJSON(ctx, "/api/finance/loans", &out); err != nil {
		return protocol.Portfolio{}, err
	}
	return out, nil
}

// InterestRates fetches the current rate sheet.
func (c *Client) InterestRates(ctx context.Context) (protocol.InterestRates, error) {
	var out protocol.InterestRates
	if err := c.getJSON(ctx, "/api/finance/interest-rates", &out); err != nil {
		return protocol.InterestRates{}, err
	}
	return out, nil
}

// NewLoan opens a loan or HELOC. Amortization is computed server-side; the
// returned record is the authoritative state.
func (c *Client) NewLoan(ctx context.Context, req domain.NewLoanRequest) (protocol.Loan, error) {
	var out protocol.Loan
	if err := c.post(ctx, "/api/finance/loan/new", req, &out); err != nil {
		return protocol.Loan{}, err
	}
	return out, nil
}

// NewCD opens a certificate of deposit.
func (c *Client) NewCD(ctx context.Context, req domain.NewCDRequest) (protocol.CD, error) {
	var out protocol.CD
	if err := c.post(ctx, "/api/finance/cd/new", req, &out); err != nil {
		return protocol.CD{}, err
	}
	return out, nil
}

// RepayLoan pays amount against a loan and returns its updated state.
func (c *Client) RepayLoan(ctx context.Context, loanID string, amount int) (protocol.Loan, error) {
	var out protocol.Loan
	if err := c.post(ctx, "/api/finance/loan/repay", repayRequest{LoanID: loanID, Amount: amount}, &out); err != nil {
		return protocol.Loan{}, err
	}
	return out, nil
}

// WithdrawCD cashes out a CD. Early-withdrawal penalties, if any, are
// applied server-side and reflected in the returned record.
func (c *Client) WithdrawCD(ctx context.Context, cdID string) (protocol.CD, error) {
	var out protocol.CD
	if err := c.post(ctx, "/api/finance/cd/withdraw", withdrawRequest{CDID: cdID}, &out); err != nil {
		return protocol.CD{}, err
	}
	return out, nil
}

var _ domain.FinanceAPI = (*Client)(nil)
