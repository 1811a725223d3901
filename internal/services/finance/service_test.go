package finance_test

import (
	"context"
	"testing"

	"pinopoly/internal/domain"
	"pinopoly/internal/services/finance"
	"pinopoly/pkg/protocol"
)

type fakeAPI struct {
	domain.FinanceAPI
	lastLoan domain.NewLoanRequest
}

func (f *fakeAPI) NewLoan(_ context.Context, req domain.NewLoanRequest) (protocol.Loan, error) {
	f.lastLoan = req
	return protocol.Loan{ID: "l1", Type: req.Type, Principal: req.Amount}, nil
}

func (f *fakeAPI) NewCD(_ context.Context, req domain.NewCDRequest) (protocol.CD, error) {
	return protocol.CD{ID: "c1", Principal: req.Amount}, nil
}

func TestOpenLoan_RejectsBadInput(t *testing.T) {
	svc := finance.New(&fakeAPI{})

	if _, err := svc.OpenLoan(context.Background(), 0, 5); err == nil {
		t.Fatal("expected error for zero amount")
	}
	if _, err := svc.OpenLoan(context.Background(), 200, 0); err == nil {
		t.Fatal("expected error for zero term")
	}
}

func TestOpenHELOC_RequiresCollateral(t *testing.T) {
	api := &fakeAPI{}
	svc := finance.New(api)

	if _, err := svc.OpenHELOC(context.Background(), 300, 5, ""); err == nil {
		t.Fatal("expected error without collateral")
	}

	loan, err := svc.OpenHELOC(context.Background(), 300, 5, "prop-3")
	if err != nil {
		t.Fatalf("open heloc: %v", err)
	}
	if loan.Type != finance.LoanTypeHELOC {
		t.Fatalf("type = %q", loan.Type)
	}
	if api.lastLoan.CollateralID != "prop-3" {
		t.Fatalf("collateral not forwarded: %+v", api.lastLoan)
	}
}

func TestRepay_Validates(t *testing.T) {
	svc := finance.New(&fakeAPI{})
	if _, err := svc.Repay(context.Background(), "", 100); err == nil {
		t.Fatal("expected error for missing loan id")
	}
	if _, err := svc.Repay(context.Background(), "l1", -5); err == nil {
		t.Fatal("expected error for negative amount")
	}
}
