// Package stub is an in-memory stand-in for the Pi-nopoly game server,
// used by integration-style tests and the stubserver binary for local
// demos.
//
// It implements just enough of the REST and realtime contract to exercise
// the client end-to-end: auth by username+PIN / admin key / display key,
// the finance and board endpoints, tunnel endpoints with a canned URL, and
// the socket events with canned responses. It deliberately implements no
// game rules: no rent, no economy simulation, no auction timers beyond a
// static snapshot. The real server owns all of that.
package stub
