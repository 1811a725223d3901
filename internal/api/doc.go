// Package api provides the HTTP implementation of the domain client
// interfaces used to talk to a Pi-nopoly game server.
//
// The server is authoritative for every resource; this package is a thin
// JSON-over-HTTP client. Supported surfaces include:
//   - Player auth (login/registration by username+PIN), admin login by
//     admin key, and display/kiosk initialization by display key.
//   - The finance endpoints (loans, CDs, interest rates).
//   - The public board endpoints (properties, players).
//   - Tunnel administration under /api/remote.
//   - Admin finance operations under /api/admin/finance.
//
// All requests are JSON over HTTP and accept a context for cancellation and
// deadlines. Stored credentials are forwarded verbatim as headers; non-2xx
// statuses are returned as errors with the HTTP method, path, and status
// text to aid diagnostics.
package api
