// Package game joins the realtime game as a player, display, or spectator.
//
// Join dials the event channel with the stored credentials, builds the
// session mirror on top of it, and asks the server for authoritative state.
// Reconnection re-requests state automatically via the channel's resync
// event.
package game
