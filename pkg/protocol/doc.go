// Package protocol defines the wire contract between the Pi-nopoly client
// and a collaborating game server.
//
// It covers both halves of the contract:
//
//   - The REST resource types returned by the server's HTTP endpoints
//     (players, properties, loans, CDs, interest rates, economic state,
//     tunnel status).
//   - The realtime event channel: event name constants for everything the
//     client emits and everything the server emits, the JSON frame that
//     carries them, and the payload struct for each event.
//
// Event names and JSON field names are the contract. Any backend that wants
// to serve this client must preserve them verbatim; conversely the client
// never invents state, it only mirrors what these payloads deliver. The
// server is authoritative for every entity in this package.
package protocol
