package finance

import (
	"context"
	"fmt"

	"pinopoly/internal/domain"
	"pinopoly/pkg/protocol"
)

// Loan types the server understands.
const (
	LoanTypeStandard = "standard"
	LoanTypeHELOC    = "heloc"
)

// Service wraps the finance endpoints with fail-fast validation.
type Service struct {
	api domain.FinanceAPI
}

// New constructs a finance Service over an API client.
func New(api domain.FinanceAPI) *Service {
	return &Service{api: api}
}

// Portfolio lists the player's open instruments.
func (s *Service) Portfolio(ctx context.Context) (protocol.Portfolio, error) {
	return s.api.Portfolio(ctx)
}

// Rates fetches the current rate sheet.
func (s *Service) Rates(ctx context.Context) (protocol.InterestRates, error) {
	return s.api.InterestRates(ctx)
}

// OpenLoan opens a standard loan.
func (s *Service) OpenLoan(ctx context.Context, amount, termLaps int) (protocol.Loan, error) {
	if err := checkAmountTerm(amount, termLaps); err != nil {
		return protocol.Loan{}, err
	}
	return s.api.NewLoan(ctx, domain.NewLoanRequest{
		Type:     LoanTypeStandard,
		Amount:   amount,
		TermLaps: termLaps,
	})
}

// OpenHELOC opens a home equity line against an owned property.
func (s *Service) OpenHELOC(ctx context.Context, amount, termLaps int, collateralID string) (protocol.Loan, error) {
	if err := checkAmountTerm(amount, termLaps); err != nil {
		return protocol.Loan{}, err
	}
	if collateralID == "" {
		return protocol.Loan{}, fmt.Errorf("heloc requires a collateral property")
	}
	return s.api.NewLoan(ctx, domain.NewLoanRequest{
		Type:         LoanTypeHELOC,
		Amount:       amount,
		TermLaps:     termLaps,
		CollateralID: collateralID,
	})
}

// OpenCD opens a certificate of deposit.
func (s *Service) OpenCD(ctx context.Context, amount, termLaps int) (protocol.CD, error) {
	if err := checkAmountTerm(amount, termLaps); err != nil {
		return protocol.CD{}, err
	}
	return s.api.NewCD(ctx, domain.NewCDRequest{Amount: amount, TermLaps: termLaps})
}

// Repay pays amount against a loan.
func (s *Service) Repay(ctx context.Context, loanID string, amount int) (protocol.Loan, error) {
	if loanID == "" {
		return protocol.Loan{}, fmt.Errorf("loan id required")
	}
	if amount <= 0 {
		return protocol.Loan{}, fmt.Errorf("repayment must be positive, got %d", amount)
	}
	return s.api.RepayLoan(ctx, loanID, amount)
}

// Withdraw cashes out a CD; the server applies any early penalty.
func (s *Service) Withdraw(ctx context.Context, cdID string) (protocol.CD, error) {
	if cdID == "" {
		return protocol.CD{}, fmt.Errorf("cd id required")
	}
	return s.api.WithdrawCD(ctx, cdID)
}

func checkAmountTerm(amount, termLaps int) error {
	if amount <= 0 {
		return fmt.Errorf("amount must be positive, got %d", amount)
	}
	if termLaps <= 0 {
		return fmt.Errorf("term must be at least one lap, got %d", termLaps)
	}
	return nil
}
