package stub

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pinopoly/internal/api"
	"pinopoly/internal/domain"
	"pinopoly/internal/socket"
	"pinopoly/pkg/protocol"
)

// The stub is only useful if the real clients can talk to it, so these
// tests go through api.Client and socket.Client rather than raw HTTP.

func newTestServer(t *testing.T) (*httptest.Server, *api.Client) {
	t.Helper()
	srv := New("stub-admin", "stub-display", zap.NewNop())
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts, api.New(ts.URL, ts.Client(), zap.NewNop())
}

func loginPlayer(t *testing.T, c *api.Client, name string) domain.Profile {
	t.Helper()
	auth, err := c.Register(context.Background(), name, "1234")
	require.NoError(t, err)
	p := domain.Profile{Username: auth.Username, PlayerID: auth.PlayerID, PIN: "1234", Token: auth.Token}
	c.UseProfile(p)
	return p
}

func TestFinanceFlow(t *testing.T) {
	_, c := newTestServer(t)
	loginPlayer(t, c, "rachel")
	ctx := context.Background()

	pf, err := c.Portfolio(ctx)
	require.NoError(t, err)
	require.Empty(t, pf.Loans)

	loan, err := c.NewLoan(ctx, domain.NewLoanRequest{Type: "standard", Amount: 300, TermLaps: 5})
	require.NoError(t, err)
	require.Equal(t, 300, loan.Balance)
	require.Equal(t, 5, loan.LapsRemaining)

	repaid, err := c.RepayLoan(ctx, loan.ID, 100)
	require.NoError(t, err)
	require.Equal(t, 200, repaid.Balance)

	cd, err := c.NewCD(ctx, domain.NewCDRequest{Amount: 150, TermLaps: 3})
	require.NoError(t, err)
	out, err := c.WithdrawCD(ctx, cd.ID)
	require.NoError(t, err)
	require.Equal(t, cd.ID, out.ID)

	pf, err = c.Portfolio(ctx)
	require.NoError(t, err)
	require.Len(t, pf.Loans, 1)
	require.Empty(t, pf.CDs)

	rates, err := c.InterestRates(ctx)
	require.NoError(t, err)
	require.NotZero(t, rates.LoanRate)
}

func TestPortfolioRequiresCredentials(t *testing.T) {
	_, c := newTestServer(t)
	_, err := c.Portfolio(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "/api/finance/loans")
}

func TestBoardEndpoints(t *testing.T) {
	_, c := newTestServer(t)
	p := loginPlayer(t, c, "monica")
	ctx := context.Background()

	props, err := c.Properties(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, props)

	players, err := c.Players(ctx)
	require.NoError(t, err)
	require.Len(t, players, 1)
	require.Equal(t, "monica", players[0].Name)

	owned, err := c.PlayerProperties(ctx, p.PlayerID)
	require.NoError(t, err)
	require.Empty(t, owned)
}

func TestLoginRejectsWrongPIN(t *testing.T) {
	_, c := newTestServer(t)
	ctx := context.Background()
	_, err := c.Register(ctx, "ross", "1111")
	require.NoError(t, err)
	_, err = c.Login(ctx, "ross", "2222")
	require.Error(t, err)
	_, err = c.Login(ctx, "ross", "1111")
	require.NoError(t, err)
}

func TestAdminGate(t *testing.T) {
	_, c := newTestServer(t)
	ctx := context.Background()

	_, err := c.FinanceOverview(ctx)
	require.Error(t, err)

	require.Error(t, c.AdminLogin(ctx, "wrong"))

	c.UseProfile(domain.Profile{AdminKey: "stub-admin"})
	require.NoError(t, c.AdminLogin(ctx, "stub-admin"))

	ov, err := c.FinanceOverview(ctx)
	require.NoError(t, err)
	require.NotZero(t, ov.Rates.BaseRate)

	require.NoError(t, c.SetRates(ctx, protocol.InterestRates{BaseRate: 0.1, LoanRate: 0.2, CDRate: 0.05, HELOCRate: 0.15}))
	rates, err := c.InterestRates(ctx)
	require.NoError(t, err)
	require.Equal(t, 0.2, rates.LoanRate)
}

func TestTunnelLifecycle(t *testing.T) {
	_, c := newTestServer(t)
	ctx := context.Background()

	st, err := c.Status(ctx)
	require.NoError(t, err)
	require.False(t, st.Running)

	st, err = c.Start(ctx)
	require.NoError(t, err)
	require.True(t, st.Running)

	url, err := c.URL(ctx)
	require.NoError(t, err)
	require.Contains(t, url, "trycloudflare.com")

	require.NoError(t, c.Stop(ctx))
	st, err = c.Status(ctx)
	require.NoError(t, err)
	require.False(t, st.Running)
}

func TestSocketRoundTrip(t *testing.T) {
	ts, c := newTestServer(t)
	p := loginPlayer(t, c, "joey")

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, err := socket.Dial(ctx, socket.Config{URL: wsURL, Profile: p, Logger: zap.NewNop()})
	require.NoError(t, err)
	defer conn.Close()

	states := make(chan protocol.GameState, 4)
	conn.On(protocol.EventGameState, func(f protocol.Frame) {
		var gs protocol.GameState
		if err := f.UnmarshalData(&gs); err == nil {
			states <- gs
		}
	})
	rolls := make(chan protocol.DiceRolled, 1)
	conn.On(protocol.EventDiceRolled, func(f protocol.Frame) {
		var d protocol.DiceRolled
		if err := f.UnmarshalData(&d); err == nil {
			rolls <- d
		}
	})

	require.NoError(t, conn.Emit(protocol.EventRequestGameState, nil))
	select {
	case gs := <-states:
		require.Len(t, gs.Players, 1)
		require.Equal(t, p.PlayerID, gs.Players[0].ID)
		require.True(t, gs.Players[0].Connected)
	case <-ctx.Done():
		t.Fatal("no game_state before timeout")
	}

	require.NoError(t, conn.Emit(protocol.EventRollDice, protocol.PlayerRef{PlayerID: p.PlayerID}))
	select {
	case d := <-rolls:
		require.Equal(t, p.PlayerID, d.PlayerID)
		require.Equal(t, d.Die1+d.Die2, d.Total)
	case <-ctx.Done():
		t.Fatal("no dice_rolled before timeout")
	}
}

func TestSocketBotManagement(t *testing.T) {
	ts, c := newTestServer(t)
	p := loginPlayer(t, c, "phoebe")
	p.AdminKey = "stub-admin"

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, err := socket.Dial(ctx, socket.Config{URL: wsURL, Profile: p, Logger: zap.NewNop()})
	require.NoError(t, err)
	defer conn.Close()

	added := make(chan protocol.BotNotice, 1)
	conn.On(protocol.EventBotAdded, func(f protocol.Frame) {
		var n protocol.BotNotice
		if err := f.UnmarshalData(&n); err == nil {
			added <- n
		}
	})
	removed := make(chan protocol.BotNotice, 1)
	conn.On(protocol.EventBotRemoved, func(f protocol.Frame) {
		var n protocol.BotNotice
		if err := f.UnmarshalData(&n); err == nil {
			removed <- n
		}
	})

	require.NoError(t, conn.Emit(protocol.EventAddBot, protocol.AddBot{Difficulty: "normal"}))
	var botID string
	select {
	case n := <-added:
		require.Equal(t, "normal", n.Bot.Difficulty)
		botID = n.Bot.ID
	case <-ctx.Done():
		t.Fatal("no bot_added before timeout")
	}

	require.NoError(t, conn.Emit(protocol.EventRemoveBot, protocol.BotRef{BotID: botID}))
	select {
	case n := <-removed:
		require.Equal(t, botID, n.Bot.ID)
	case <-ctx.Done():
		t.Fatal("no bot_removed before timeout")
	}
}
