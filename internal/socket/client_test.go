package socket_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pinopoly/internal/domain"
	"pinopoly/internal/socket"
	"pinopoly/pkg/protocol"
)

var upgrader = websocket.Upgrader{}

// echoServer upgrades, then on the first frame it receives replays the
// canned frames; every received frame is forwarded onto recv. Sending only
// after a client frame keeps tests free of registration races.
func echoServer(t *testing.T, canned [][]byte, recv chan<- protocol.Frame) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		sent := false
		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				return
			}
			f, err := protocol.Decode(msg)
			if err != nil {
				continue
			}
			recv <- f
			if !sent {
				sent = true
				for _, b := range canned {
					if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
						return
					}
				}
			}
		}
	}))
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestClient_ReceivesAndDispatches(t *testing.T) {
	rolled, err := protocol.Encode(protocol.EventDiceRolled, protocol.DiceRolled{
		PlayerID: "p1", Die1: 3, Die2: 4, Total: 7,
	})
	require.NoError(t, err)

	recv := make(chan protocol.Frame, 8)
	srv := echoServer(t, [][]byte{rolled}, recv)
	defer srv.Close()

	got := make(chan protocol.DiceRolled, 1)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c, err := socket.Dial(ctx, socket.Config{URL: wsURL(srv)})
	require.NoError(t, err)
	defer c.Close()

	c.On(protocol.EventDiceRolled, func(f protocol.Frame) {
		var d protocol.DiceRolled
		if err := f.UnmarshalData(&d); err == nil {
			got <- d
		}
	})

	// The server replays its canned frames once it hears from us.
	require.NoError(t, c.Emit(protocol.EventRequestGameState, nil))

	select {
	case d := <-got:
		assert.Equal(t, 7, d.Total)
	case <-time.After(3 * time.Second):
		t.Fatal("dice_rolled never dispatched")
	}
}

func TestClient_EmitReachesServer(t *testing.T) {
	recv := make(chan protocol.Frame, 8)
	srv := echoServer(t, nil, recv)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c, err := socket.Dial(ctx, socket.Config{
		URL:     wsURL(srv),
		Profile: domain.Profile{PlayerID: "p1", Token: "tok"},
	})
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.Emit(protocol.EventPlaceBid, protocol.PlaceBid{
		PlayerID: "p1", PropertyID: "boardwalk", Amount: 120,
	}))

	select {
	case f := <-recv:
		assert.Equal(t, protocol.EventPlaceBid, f.Event)
		var bid protocol.PlaceBid
		require.NoError(t, f.UnmarshalData(&bid))
		assert.Equal(t, 120, bid.Amount)
	case <-time.After(3 * time.Second):
		t.Fatal("place_bid never reached server")
	}
}

func TestClient_AnswersAppLevelPing(t *testing.T) {
	ping, err := protocol.Encode(protocol.EventPing, nil)
	require.NoError(t, err)

	recv := make(chan protocol.Frame, 8)
	srv := echoServer(t, [][]byte{ping}, recv)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c, err := socket.Dial(ctx, socket.Config{URL: wsURL(srv)})
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.Emit(protocol.EventGetAllPlayers, nil))

	deadline := time.After(3 * time.Second)
	for {
		select {
		case f := <-recv:
			if f.Event == protocol.EventGetAllPlayers {
				continue // our own trigger frame
			}
			assert.Equal(t, protocol.EventPong, f.Event)
			return
		case <-deadline:
			t.Fatal("pong never sent")
		}
	}
}

// One-shot callers (admin subcommands, leave_game on quit) emit a single
// frame and close straight away; the frame must still reach the server.
func TestClient_CloseFlushesQueuedEmit(t *testing.T) {
	recv := make(chan protocol.Frame, 8)
	srv := echoServer(t, nil, recv)
	defer srv.Close()

	c, err := socket.Dial(context.Background(), socket.Config{
		URL:     wsURL(srv),
		Profile: domain.Profile{AdminKey: "k"},
	})
	require.NoError(t, err)

	require.NoError(t, c.Emit(protocol.EventStartGame, nil))
	require.NoError(t, c.Close())

	select {
	case f := <-recv:
		assert.Equal(t, protocol.EventStartGame, f.Event)
	case <-time.After(3 * time.Second):
		t.Fatal("start_game dropped on close")
	}
}

func TestClient_ReconnectsAndResyncs(t *testing.T) {
	recv := make(chan protocol.Frame, 8)
	var conns int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		// Drop the first connection immediately to force a redial.
		if atomic.AddInt32(&conns, 1) == 1 {
			conn.Close()
			return
		}
		defer conn.Close()
		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				return
			}
			if f, err := protocol.Decode(msg); err == nil {
				recv <- f
			}
		}
	}))
	defer srv.Close()

	c, err := socket.Dial(context.Background(), socket.Config{
		URL:         wsURL(srv),
		Reconnect:   true,
		RetryDelay:  50 * time.Millisecond,
		ResyncEvent: protocol.EventRequestGameState,
	})
	require.NoError(t, err)
	defer c.Close()

	select {
	case f := <-recv:
		assert.Equal(t, protocol.EventRequestGameState, f.Event)
	case <-time.After(3 * time.Second):
		t.Fatal("resync never arrived after redial")
	}
	assert.GreaterOrEqual(t, atomic.LoadInt32(&conns), int32(2))
}

func TestClient_CloseIsIdempotent(t *testing.T) {
	recv := make(chan protocol.Frame, 1)
	srv := echoServer(t, nil, recv)
	defer srv.Close()

	c, err := socket.Dial(context.Background(), socket.Config{URL: wsURL(srv)})
	require.NoError(t, err)

	require.NoError(t, c.Close())
	require.NoError(t, c.Close())

	err = c.Emit(protocol.EventRollDice, protocol.PlayerRef{PlayerID: "p1"})
	assert.ErrorIs(t, err, socket.ErrClosed)
}

func TestClient_CredentialsInHandshake(t *testing.T) {
	seen := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen <- r.URL.Query().Get("player_id")
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	c, err := socket.Dial(context.Background(), socket.Config{
		URL:     wsURL(srv),
		Profile: domain.Profile{PlayerID: "p9", Token: "t"},
	})
	require.NoError(t, err)
	defer c.Close()

	select {
	case id := <-seen:
		assert.Equal(t, "p9", id)
	case <-time.After(3 * time.Second):
		t.Fatal("handshake never observed")
	}
}
