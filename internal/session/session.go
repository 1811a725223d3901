package session

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"pinopoly/internal/domain"
	"pinopoly/pkg/protocol"
)

// Session folds server events into a View and emits player actions. One
// session per connected client; the UI is its only consumer.
type Session struct {
	conn     domain.EventConn
	log      *zap.Logger
	playerID string

	mu   sync.RWMutex
	view View

	updates chan struct{}
}

// New wires a session onto an open event channel and subscribes to every
// server event. playerID may be empty for display/kiosk sessions.
func New(conn domain.EventConn, playerID string, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Session{
		conn:     conn,
		log:      log,
		playerID: playerID,
		updates:  make(chan struct{}, 1),
	}
	s.subscribe()
	return s
}

// View returns a copy of the mirrored state.
func (s *Session) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view.clone()
}

// Updates signals that the view changed. Coalesced: a slow reader sees at
// least one signal per burst, not one per event.
func (s *Session) Updates() <-chan struct{} {
	return s.updates
}

// PlayerID returns the acting player's id, empty for spectators.
func (s *Session) PlayerID() string { return s.playerID }

// Sync asks the server to replay authoritative state.
func (s *Session) Sync() error {
	return s.conn.Emit(protocol.EventRequestGameState, nil)
}

// Player actions. All of them delegate to the server; nothing is applied
// locally until the corresponding event comes back.

func (s *Session) RollDice() error {
	return s.conn.Emit(protocol.EventRollDice, protocol.PlayerRef{PlayerID: s.playerID})
}

func (s *Session) EndTurn() error {
	return s.conn.Emit(protocol.EventEndTurn, protocol.PlayerRef{PlayerID: s.playerID})
}

func (s *Session) PlaceBid(propertyID string, amount int) error {
	return s.conn.Emit(protocol.EventPlaceBid, protocol.PlaceBid{
		PlayerID: s.playerID, PropertyID: propertyID, Amount: amount,
	})
}

func (s *Session) PassAuction() error {
	return s.conn.Emit(protocol.EventPassAuction, protocol.PlayerRef{PlayerID: s.playerID})
}

func (s *Session) DrawCard(deck string) error {
	return s.conn.Emit(protocol.EventDrawCard, protocol.DrawCard{PlayerID: s.playerID, Deck: deck})
}

func (s *Session) Leave() error {
	return s.conn.Emit(protocol.EventLeaveGame, protocol.PlayerRef{PlayerID: s.playerID})
}

func (s *Session) subscribe() {
	s.conn.On(protocol.EventGameState, s.onGameState)
	s.conn.On(protocol.EventGameStateUpdate, s.onGameState)
	s.conn.On(protocol.EventDiceRolled, s.onDiceRolled)
	s.conn.On(protocol.EventPlayerMoved, s.onPlayerMoved)
	s.conn.On(protocol.EventPlayerJailed, s.onPlayerJailed)
	s.conn.On(protocol.EventTurnChanged, s.onTurnChanged)
	s.conn.On(protocol.EventPropertyUpdate, s.onPropertyUpdate)
	s.conn.On(protocol.EventEconomicUpdate, s.onEconomicUpdate)
	s.conn.On(protocol.EventAuctionBid, s.onAuctionSnapshot)
	s.conn.On(protocol.EventAuctionTimer, s.onAuctionSnapshot)
	s.conn.On(protocol.EventAuctionPass, s.onAuctionPass)
	s.conn.On(protocol.EventAuctionEnded, s.onAuctionEnded)
	s.conn.On(protocol.EventAuctionError, s.onAuctionError)
	s.conn.On(protocol.EventBotAdded, s.onBotNotice("bot added"))
	s.conn.On(protocol.EventBotRemoved, s.onBotNotice("bot removed"))
	s.conn.On(protocol.EventBotUpdated, s.onBotNotice("bot updated"))
	s.conn.On(protocol.EventBotError, s.onErrorNotice("bot error"))
	s.conn.On(protocol.EventCardDrawn, s.onCardDrawn)
	s.conn.On(protocol.EventPlayerConnected, s.onPresence("connected", true))
	s.conn.On(protocol.EventPlayerDisconnected, s.onPresence("disconnected", false))
	s.conn.On(protocol.EventPlayerReconnected, s.onPresence("reconnected", true))
	s.conn.On(protocol.EventPlayerTimedOut, s.onPresence("timed out", false))
}

// apply runs fn under the lock and signals readers.
func (s *Session) apply(fn func(v *View)) {
	s.mu.Lock()
	fn(&s.view)
	if len(s.view.Feed) > feedLimit {
		s.view.Feed = s.view.Feed[len(s.view.Feed)-feedLimit:]
	}
	s.mu.Unlock()

	select {
	case s.updates <- struct{}{}:
	default:
	}
}

func (s *Session) onGameState(f protocol.Frame) {
	var gs protocol.GameState
	if err := f.UnmarshalData(&gs); err != nil {
		s.log.Warn("bad game_state payload", zap.Error(err))
		return
	}
	s.apply(func(v *View) {
		// Snapshot replaces the mirror wholesale.
		v.Players = gs.Players
		v.Properties = gs.Properties
		v.CurrentTurn = gs.CurrentTurn
		v.Lap = gs.Lap
		v.Started = gs.Started
		v.Economy = gs.Economy
		v.Auction = gs.Auction
	})
}

func (s *Session) onDiceRolled(f protocol.Frame) {
	var d protocol.DiceRolled
	if err := f.UnmarshalData(&d); err != nil {
		return
	}
	s.apply(func(v *View) {
		v.LastRoll = &d
		v.Feed = append(v.Feed, fmt.Sprintf("%s rolled %d+%d", s.name(v, d.PlayerID), d.Die1, d.Die2))
	})
}

func (s *Session) onPlayerMoved(f protocol.Frame) {
	var m protocol.PlayerMoved
	if err := f.UnmarshalData(&m); err != nil {
		return
	}
	s.apply(func(v *View) {
		for i := range v.Players {
			if v.Players[i].ID == m.PlayerID {
				v.Players[i].Position = m.To
			}
		}
		note := fmt.Sprintf("%s moved to %d", s.name(v, m.PlayerID), m.To)
		if m.PassedGo {
			note += " (passed GO)"
		}
		v.Feed = append(v.Feed, note)
	})
}

func (s *Session) onPlayerJailed(f protocol.Frame) {
	var j protocol.PlayerJailed
	if err := f.UnmarshalData(&j); err != nil {
		return
	}
	s.apply(func(v *View) {
		for i := range v.Players {
			if v.Players[i].ID == j.PlayerID {
				v.Players[i].InJail = true
			}
		}
		v.Feed = append(v.Feed, fmt.Sprintf("%s went to jail", s.name(v, j.PlayerID)))
	})
}

func (s *Session) onTurnChanged(f protocol.Frame) {
	var tc protocol.TurnChanged
	if err := f.UnmarshalData(&tc); err != nil {
		return
	}
	s.apply(func(v *View) {
		v.CurrentTurn = tc.PlayerID
		if tc.Lap > 0 {
			v.Lap = tc.Lap
		}
		v.Feed = append(v.Feed, fmt.Sprintf("turn: %s", s.name(v, tc.PlayerID)))
	})
}

func (s *Session) onPropertyUpdate(f protocol.Frame) {
	var pu protocol.PropertyUpdate
	if err := f.UnmarshalData(&pu); err != nil {
		return
	}
	s.apply(func(v *View) {
		for i := range v.Properties {
			if v.Properties[i].ID == pu.Property.ID {
				v.Properties[i] = pu.Property
				return
			}
		}
		// Unknown id: positions are stable, so this is a layout we have not
		// seen yet. Append rather than drop.
		v.Properties = append(v.Properties, pu.Property)
	})
}

func (s *Session) onEconomicUpdate(f protocol.Frame) {
	var e protocol.EconomicState
	if err := f.UnmarshalData(&e); err != nil {
		return
	}
	s.apply(func(v *View) {
		v.Economy = &e
		if e.Lap > 0 {
			v.Lap = e.Lap
		}
		v.Feed = append(v.Feed, fmt.Sprintf("economy: %s", e.Phase))
	})
}

func (s *Session) onAuctionSnapshot(f protocol.Frame) {
	var a protocol.AuctionState
	if err := f.UnmarshalData(&a); err != nil {
		return
	}
	s.apply(func(v *View) {
		a.Active = true
		v.Auction = &a
	})
}

func (s *Session) onAuctionPass(f protocol.Frame) {
	var ap protocol.AuctionPass
	if err := f.UnmarshalData(&ap); err != nil {
		return
	}
	s.apply(func(v *View) {
		if v.Auction != nil {
			v.Auction.Passed = append(v.Auction.Passed, ap.PlayerID)
		}
		v.Feed = append(v.Feed, fmt.Sprintf("%s passed", s.name(v, ap.PlayerID)))
	})
}

func (s *Session) onAuctionEnded(f protocol.Frame) {
	var ae protocol.AuctionEnded
	if err := f.UnmarshalData(&ae); err != nil {
		return
	}
	s.apply(func(v *View) {
		v.Auction = nil
		if ae.WinnerID == "" {
			v.Feed = append(v.Feed, "auction ended with no bids")
			return
		}
		v.Feed = append(v.Feed, fmt.Sprintf("auction won by %s for %d", s.name(v, ae.WinnerID), ae.Amount))
	})
}

func (s *Session) onAuctionError(f protocol.Frame) {
	var en protocol.ErrorNotice
	_ = f.UnmarshalData(&en)
	s.apply(func(v *View) {
		v.Auction = nil
		v.Feed = append(v.Feed, "auction error: "+en.Message)
	})
}

func (s *Session) onBotNotice(verb string) domain.EventHandler {
	return func(f protocol.Frame) {
		var bn protocol.BotNotice
		if err := f.UnmarshalData(&bn); err != nil {
			return
		}
		s.apply(func(v *View) {
			v.Feed = append(v.Feed, fmt.Sprintf("%s: %s (%s)", verb, bn.Bot.Name, bn.Bot.Difficulty))
		})
	}
}

func (s *Session) onErrorNotice(kind string) domain.EventHandler {
	return func(f protocol.Frame) {
		var en protocol.ErrorNotice
		_ = f.UnmarshalData(&en)
		s.apply(func(v *View) {
			v.Feed = append(v.Feed, kind+": "+en.Message)
		})
	}
}

func (s *Session) onCardDrawn(f protocol.Frame) {
	var cd protocol.CardDrawn
	if err := f.UnmarshalData(&cd); err != nil {
		return
	}
	s.apply(func(v *View) {
		v.Feed = append(v.Feed, fmt.Sprintf("%s drew %s: %s", s.name(v, cd.PlayerID), cd.Deck, cd.Card.Title))
	})
}

// onPresence only annotates players; rosters change via game_state alone.
func (s *Session) onPresence(verb string, connected bool) domain.EventHandler {
	return func(f protocol.Frame) {
		var p protocol.Presence
		if err := f.UnmarshalData(&p); err != nil {
			return
		}
		s.apply(func(v *View) {
			for i := range v.Players {
				if v.Players[i].ID == p.PlayerID {
					v.Players[i].Connected = connected
				}
			}
			v.Feed = append(v.Feed, fmt.Sprintf("%s %s", s.name(v, p.PlayerID), verb))
		})
	}
}

// name resolves a player id to its display name inside an apply callback.
func (s *Session) name(v *View, id string) string {
	for _, p := range v.Players {
		if p.ID == id {
			return p.Name
		}
	}
	return id
}
