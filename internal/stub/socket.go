package stub

import (
	"fmt"
	"math/rand"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"pinopoly/pkg/protocol"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(*http.Request) bool { return true }, // stub only
}

func (s *Server) handleSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	pid := r.URL.Query().Get("player_id")

	wmu := &sync.Mutex{}
	s.mu.Lock()
	s.conns[conn] = wmu
	s.setConnected(pid, true)
	s.mu.Unlock()
	if pid != "" {
		s.broadcast(protocol.EventPlayerConnected, protocol.Presence{PlayerID: pid})
	}

	defer func() {
		s.mu.Lock()
		delete(s.conns, conn)
		s.setConnected(pid, false)
		s.mu.Unlock()
		_ = conn.Close()
		if pid != "" {
			s.broadcast(protocol.EventPlayerDisconnected, protocol.Presence{PlayerID: pid})
		}
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		f, err := protocol.Decode(msg)
		if err != nil {
			continue
		}
		s.handleEvent(conn, wmu, f)
	}
}

// handleEvent answers client events with canned responses. No rules: the
// stub moves tokens and echoes state, nothing more.
func (s *Server) handleEvent(conn *websocket.Conn, wmu *sync.Mutex, f protocol.Frame) {
	switch f.Event {
	case protocol.EventRequestGameState, protocol.EventGetAllPlayers:
		s.mu.Lock()
		state := s.snapshot()
		s.mu.Unlock()
		s.sendTo(conn, wmu, protocol.EventGameState, state)

	case protocol.EventRollDice:
		var ref protocol.PlayerRef
		if err := f.UnmarshalData(&ref); err != nil {
			return
		}
		d1, d2 := 1+rand.Intn(6), 1+rand.Intn(6)

		s.mu.Lock()
		var from, to int
		passedGo := false
		for i := range s.state.Players {
			if s.state.Players[i].ID == ref.PlayerID {
				from = s.state.Players[i].Position
				to = (from + d1 + d2) % 40
				passedGo = to < from
				s.state.Players[i].Position = to
			}
		}
		s.mu.Unlock()

		s.broadcast(protocol.EventDiceRolled, protocol.DiceRolled{
			PlayerID: ref.PlayerID, Die1: d1, Die2: d2, Total: d1 + d2, Doubles: d1 == d2,
		})
		s.broadcast(protocol.EventPlayerMoved, protocol.PlayerMoved{
			PlayerID: ref.PlayerID, From: from, To: to, PassedGo: passedGo,
		})

	case protocol.EventEndTurn:
		s.mu.Lock()
		next := ""
		if n := len(s.state.Players); n > 0 {
			cur := 0
			for i, p := range s.state.Players {
				if p.ID == s.state.CurrentTurn {
					cur = i
				}
			}
			next = s.state.Players[(cur+1)%n].ID
			s.state.CurrentTurn = next
		}
		lap := s.state.Lap
		s.mu.Unlock()
		s.broadcast(protocol.EventTurnChanged, protocol.TurnChanged{PlayerID: next, Lap: lap})

	case protocol.EventPlaceBid:
		var bid protocol.PlaceBid
		if err := f.UnmarshalData(&bid); err != nil {
			return
		}
		s.broadcast(protocol.EventAuctionBid, protocol.AuctionState{
			PropertyID:       bid.PropertyID,
			HighestBid:       bid.Amount,
			HighestBidderID:  bid.PlayerID,
			SecondsRemaining: 15,
			Active:           true,
		})

	case protocol.EventPassAuction:
		var ref protocol.PlayerRef
		if err := f.UnmarshalData(&ref); err != nil {
			return
		}
		s.broadcast(protocol.EventAuctionPass, protocol.AuctionPass{PlayerID: ref.PlayerID})

	case protocol.EventDrawCard:
		var dc protocol.DrawCard
		if err := f.UnmarshalData(&dc); err != nil {
			return
		}
		s.broadcast(protocol.EventCardDrawn, protocol.CardDrawn{
			PlayerID: dc.PlayerID,
			Deck:     dc.Deck,
			Card:     protocol.Card{Title: "Bank Error In Your Favor", Text: "Collect $200", Action: "credit", Amount: 200},
		})

	case protocol.EventAddBot, protocol.EventCreateBot:
		var req protocol.AddBot
		if err := f.UnmarshalData(&req); err != nil {
			return
		}
		name := req.Name
		if name == "" {
			name = "Bot"
		}
		difficulty := req.Difficulty
		if difficulty == "" {
			difficulty = "normal"
		}

		s.mu.Lock()
		s.seq++
		bot := protocol.Bot{ID: s.nextID("bot"), Name: name, Difficulty: difficulty}
		s.state.Players = append(s.state.Players, protocol.Player{
			ID: bot.ID, Name: bot.Name, Balance: 1500, IsBot: true, Connected: true,
			TurnOrder: len(s.state.Players),
		})
		s.mu.Unlock()
		s.broadcast(protocol.EventBotAdded, protocol.BotNotice{Bot: bot})

	case protocol.EventRemoveBot:
		var ref protocol.BotRef
		if err := f.UnmarshalData(&ref); err != nil {
			return
		}
		s.mu.Lock()
		bot, ok := s.removePlayerLocked(ref.BotID)
		s.mu.Unlock()
		if !ok {
			s.sendTo(conn, wmu, protocol.EventBotError, protocol.ErrorNotice{Message: "no such bot"})
			return
		}
		s.broadcast(protocol.EventBotRemoved, protocol.BotNotice{
			Bot: protocol.Bot{ID: bot.ID, Name: bot.Name},
		})

	case protocol.EventSetBotDifficulty:
		var req protocol.SetBotDifficulty
		if err := f.UnmarshalData(&req); err != nil {
			return
		}
		s.mu.Lock()
		var name string
		for _, p := range s.state.Players {
			if p.ID == req.BotID {
				name = p.Name
			}
		}
		s.mu.Unlock()
		if name == "" {
			s.sendTo(conn, wmu, protocol.EventBotError, protocol.ErrorNotice{Message: "no such bot"})
			return
		}
		s.broadcast(protocol.EventBotUpdated, protocol.BotNotice{
			Bot: protocol.Bot{ID: req.BotID, Name: name, Difficulty: req.Difficulty},
		})

	case protocol.EventStartGame:
		s.mu.Lock()
		s.state.Started = true
		if s.state.CurrentTurn == "" && len(s.state.Players) > 0 {
			s.state.CurrentTurn = s.state.Players[0].ID
		}
		state := s.snapshot()
		s.mu.Unlock()
		s.broadcast(protocol.EventGameState, state)

	case protocol.EventResetGame:
		s.mu.Lock()
		s.state = protocol.GameState{
			Properties: demoBoard(),
			Lap:        1,
			Economy:    s.state.Economy,
		}
		s.portfolios = make(map[string]*protocol.Portfolio)
		state := s.snapshot()
		s.mu.Unlock()
		s.broadcast(protocol.EventGameState, state)

	case protocol.EventRemovePlayer, protocol.EventLeaveGame:
		var ref protocol.PlayerRef
		if err := f.UnmarshalData(&ref); err != nil {
			return
		}
		s.mu.Lock()
		_, _ = s.removePlayerLocked(ref.PlayerID)
		state := s.snapshot()
		s.mu.Unlock()
		s.broadcast(protocol.EventGameState, state)

	default:
		s.log.Debug("stub ignoring event", zap.String("event", f.Event))
	}
}

// snapshot deep-copies the state for sending. Caller holds s.mu.
func (s *Server) snapshot() protocol.GameState {
	out := s.state
	out.Players = append([]protocol.Player(nil), s.state.Players...)
	out.Properties = append([]protocol.Property(nil), s.state.Properties...)
	return out
}

// removePlayerLocked drops a player from the roster. Caller holds s.mu.
func (s *Server) removePlayerLocked(id string) (protocol.Player, bool) {
	for i, p := range s.state.Players {
		if p.ID == id {
			s.state.Players = append(s.state.Players[:i], s.state.Players[i+1:]...)
			return p, true
		}
	}
	return protocol.Player{}, false
}

// setConnected flips a player's presence flag. Caller holds s.mu.
func (s *Server) setConnected(pid string, connected bool) {
	for i := range s.state.Players {
		if s.state.Players[i].ID == pid {
			s.state.Players[i].Connected = connected
		}
	}
}

func (s *Server) nextID(prefix string) string {
	// Caller holds s.mu; seq was already bumped.
	return fmt.Sprintf("%s-%d", prefix, s.seq)
}

func (s *Server) broadcast(event string, payload any) {
	b, err := protocol.Encode(event, payload)
	if err != nil {
		return
	}
	s.mu.Lock()
	conns := make(map[*websocket.Conn]*sync.Mutex, len(s.conns))
	for c, m := range s.conns {
		conns[c] = m
	}
	s.mu.Unlock()

	for c, m := range conns {
		m.Lock()
		_ = c.WriteMessage(websocket.TextMessage, b)
		m.Unlock()
	}
}

func (s *Server) sendTo(conn *websocket.Conn, wmu *sync.Mutex, event string, payload any) {
	b, err := protocol.Encode(event, payload)
	if err != nil {
		return
	}
	wmu.Lock()
	_ = conn.WriteMessage(websocket.TextMessage, b)
	wmu.Unlock()
}
