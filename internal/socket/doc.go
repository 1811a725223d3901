// Package socket implements the realtime event channel to the game server.
//
// A Client holds one websocket connection and two pumps: the read pump
// decodes incoming frames and dispatches them to registered handlers, the
// write pump serializes every outbound frame through a buffered send
// channel and keeps the connection alive with pings. The server's
// application-level ping event is answered with pong automatically.
//
// When reconnection is enabled, a dropped connection is redialed after a
// fixed delay with the same credentials and session id; registered handlers
// survive the reconnect, and an optional resync event lets the owner
// re-request authoritative state (request_game_state) once the channel is
// back.
package socket
