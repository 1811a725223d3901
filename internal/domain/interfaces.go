package domain

import (
	"context"

	"pinopoly/pkg/protocol"
)

// CredentialStore persists the local profile. A missing profile is reported
// via the ok return, not an error.
type CredentialStore interface {
	SaveProfile(passphrase string, p Profile) error
	LoadProfile(passphrase string) (Profile, bool, error)
	ClearProfile() error
}

// AuthAPI is the server's authentication boundary. The client only stores
// and forwards credentials; validation is entirely server-side.
type AuthAPI interface {
	Login(ctx context.Context, username, pin string) (PlayerAuth, error)
	Register(ctx context.Context, username, pin string) (PlayerAuth, error)
	AdminLogin(ctx context.Context, key string) error
	DisplayInit(ctx context.Context, key string) error
}

// FinanceAPI covers the /api/finance endpoints.
type FinanceAPI interface {
	Portfolio(ctx context.Context) (protocol.Portfolio, error)
	InterestRates(ctx context.Context) (protocol.InterestRates, error)
	NewLoan(ctx context.Context, req NewLoanRequest) (protocol.Loan, error)
	NewCD(ctx context.Context, req NewCDRequest) (protocol.CD, error)
	RepayLoan(ctx context.Context, loanID string, amount int) (protocol.Loan, error)
	WithdrawCD(ctx context.Context, cdID string) (protocol.CD, error)
}

// BoardAPI covers the public board endpoints plus per-player holdings.
type BoardAPI interface {
	Properties(ctx context.Context) ([]protocol.Property, error)
	Players(ctx context.Context) ([]protocol.Player, error)
	PlayerProperties(ctx context.Context, playerID string) ([]protocol.Property, error)
}

// AdminAPI covers /api/admin/finance.
type AdminAPI interface {
	FinanceOverview(ctx context.Context) (protocol.AdminFinanceOverview, error)
	SetRates(ctx context.Context, rates protocol.InterestRates) error
	AdjustBalance(ctx context.Context, playerID string, amount int, reason string) error
}

// RemoteAPI drives the Cloudflare Tunnel via /api/remote.
type RemoteAPI interface {
	Status(ctx context.Context) (protocol.TunnelStatus, error)
	Start(ctx context.Context) (protocol.TunnelStatus, error)
	Stop(ctx context.Context) error
	URL(ctx context.Context) (string, error)
}

// EventHandler receives a decoded frame for a subscribed event.
type EventHandler func(f protocol.Frame)

// EventConn is the realtime channel. Handlers registered with On survive
// reconnects; Emit is safe from any goroutine.
type EventConn interface {
	On(event string, h EventHandler)
	Emit(event string, payload any) error
	Errors() <-chan error
	Close() error
}
