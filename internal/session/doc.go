// Package session maintains the client-side mirror of server-authoritative
// game state.
//
// A Session subscribes to every server event on the realtime channel and
// folds the payloads into a View: players, properties, whose turn it is,
// the last dice roll, any live auction, the economic snapshot, and a short
// human-readable feed of what just happened. The server is authoritative
// throughout; events are applied last-write-wins and the mirror never
// invents state. A full game_state payload wholly replaces the mirrored
// players and properties.
//
// Player actions (roll, end turn, bid, pass, draw, leave) are emitted on
// the same channel. Readers take snapshots with View and learn about
// changes over Updates.
package session
