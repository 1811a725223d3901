package session

import "pinopoly/pkg/protocol"

// feedLimit bounds the event feed kept in the view.
const feedLimit = 50

// View is a point-in-time copy of the mirrored game state. Everything in it
// came from the server; mutating a View affects nothing.
type View struct {
	Players     []protocol.Player
	Properties  []protocol.Property
	CurrentTurn string
	Lap         int
	Started     bool
	LastRoll    *protocol.DiceRolled
	Auction     *protocol.AuctionState
	Economy     *protocol.EconomicState
	Feed        []string
}

// PlayerByID finds a player in the view.
func (v View) PlayerByID(id string) (protocol.Player, bool) {
	for _, p := range v.Players {
		if p.ID == id {
			return p, true
		}
	}
	return protocol.Player{}, false
}

// PropertyAt finds the property on a board position.
func (v View) PropertyAt(pos int) (protocol.Property, bool) {
	for _, p := range v.Properties {
		if p.Position == pos {
			return p, true
		}
	}
	return protocol.Property{}, false
}

func (v View) clone() View {
	out := v
	out.Players = append([]protocol.Player(nil), v.Players...)
	out.Properties = append([]protocol.Property(nil), v.Properties...)
	out.Feed = append([]string(nil), v.Feed...)
	if v.LastRoll != nil {
		r := *v.LastRoll
		out.LastRoll = &r
	}
	if v.Auction != nil {
		a := *v.Auction
		a.Passed = append([]string(nil), v.Auction.Passed...)
		out.Auction = &a
	}
	if v.Economy != nil {
		e := *v.Economy
		out.Economy = &e
	}
	return out
}
