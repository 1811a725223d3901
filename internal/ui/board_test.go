package ui

import (
	"strings"
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"pinopoly/internal/session"
	"pinopoly/pkg/protocol"
)

type fakeSession struct {
	view    session.View
	updates chan struct{}
	calls   []string
	bidProp string
	bidAmt  int
}

func newFakeSession() *fakeSession {
	return &fakeSession{
		updates: make(chan struct{}, 1),
		view: session.View{
			Players: []protocol.Player{
				{ID: "p1", Name: "alice", Balance: 1500, Position: 0},
				{ID: "p2", Name: "bob", Balance: 1200, Position: 24, InJail: false},
			},
			Properties: []protocol.Property{
				{ID: "prop-24", Name: "Illinois Avenue", Position: 24, OwnerID: "p2", Rent: 20},
			},
			CurrentTurn: "p1",
			Lap:         3,
			Started:     true,
			Feed:        []string{"alice rolled 7"},
		},
	}
}

func (f *fakeSession) View() session.View        { return f.view }
func (f *fakeSession) Updates() <-chan struct{}  { return f.updates }
func (f *fakeSession) PlayerID() string          { return "p1" }
func (f *fakeSession) RollDice() error           { f.calls = append(f.calls, "roll"); return nil }
func (f *fakeSession) EndTurn() error            { f.calls = append(f.calls, "end"); return nil }
func (f *fakeSession) PassAuction() error        { f.calls = append(f.calls, "pass"); return nil }
func (f *fakeSession) DrawCard(string) error     { f.calls = append(f.calls, "draw"); return nil }
func (f *fakeSession) Leave() error              { f.calls = append(f.calls, "leave"); return nil }
func (f *fakeSession) PlaceBid(prop string, amt int) error {
	f.calls = append(f.calls, "bid")
	f.bidProp, f.bidAmt = prop, amt
	return nil
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestBoardViewShowsPlayersAndTurn(t *testing.T) {
	m := NewBoardModel(newFakeSession(), false)
	out := m.View()
	require.Contains(t, out, "alice")
	require.Contains(t, out, "bob")
	require.Contains(t, out, "your turn")
	require.Contains(t, out, "lap 3")
	require.Contains(t, out, "r roll")
}

func TestBoardActionKeys(t *testing.T) {
	sess := newFakeSession()
	m := NewBoardModel(sess, false)

	next, _ := m.Update(key("r"))
	next, _ = next.Update(key("e"))
	next, _ = next.Update(key("d"))
	_, _ = next.Update(key("q"))

	require.Equal(t, []string{"roll", "end", "draw", "leave"}, sess.calls)
}

func TestBoardBidUsesAuctionState(t *testing.T) {
	sess := newFakeSession()
	sess.view.Auction = &protocol.AuctionState{
		PropertyID: "prop-24", HighestBid: 120, Active: true, SecondsRemaining: 9,
	}
	m := NewBoardModel(sess, false)

	out := m.View()
	require.Contains(t, out, "Illinois Avenue")
	require.Contains(t, out, "high bid $120")

	_, _ = m.Update(key("b"))
	require.Equal(t, []string{"bid"}, sess.calls)
	require.Equal(t, "prop-24", sess.bidProp)
	require.Equal(t, 130, sess.bidAmt)
}

func TestBoardReadOnlyIgnoresActions(t *testing.T) {
	sess := newFakeSession()
	m := NewBoardModel(sess, true)

	next, _ := m.Update(key("r"))
	_, _ = next.Update(key("q"))

	require.Empty(t, sess.calls)
	require.Contains(t, m.View(), "q quit")
	require.NotContains(t, m.View(), "r roll")
}

func TestInitialTakesFirstRune(t *testing.T) {
	require.Equal(t, "A", initial("alice"))
	require.Equal(t, "Ü", initial("über"))
	require.Equal(t, "Ö", initial("östen"))
	require.Equal(t, "?", initial(""))
	require.True(t, utf8.ValidString(initial("über")), "initial must not split a rune")
}

func TestBoardRepaintsOnSessionUpdate(t *testing.T) {
	sess := newFakeSession()
	m := NewBoardModel(sess, false)

	sess.view.Lap = 4
	next, cmd := m.Update(updateMsg{})
	require.NotNil(t, cmd)
	require.Contains(t, next.View(), "lap 4")
}

func TestRenderPortfolio(t *testing.T) {
	out := RenderPortfolio(protocol.Portfolio{
		Loans: []protocol.Loan{{ID: "loan-1", Type: "heloc", Principal: 400, Balance: 250, Rate: 0.12, LapsRemaining: 4, CollateralID: "prop-3"}},
	})
	require.Contains(t, out, "loan-1")
	require.Contains(t, out, "heloc")
	require.Contains(t, out, "against prop-3")
	require.True(t, strings.Contains(out, "none"), "empty CD section should say none")
}
