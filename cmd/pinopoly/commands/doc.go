// Package commands defines the pinopoly CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - login      Authenticate with username and PIN, store credentials
//   - register   Create an account and log in
//   - logout     Discard stored credentials
//   - whoami     Show the stored profile (secrets as fingerprints)
//   - play       Join the game and open the live board
//   - board      Print a one-shot board snapshot
//   - finance    Loans, CDs and interest rates
//   - admin      Game-master controls (bots, rates, lifecycle)
//   - remote     Manage the public tunnel
//   - display    Shared-screen kiosk mode
//
// # Implementation
//
// The root command loads configuration (defaults, config.yaml, environment,
// flags, in that order) and builds the dependency graph (credential store,
// API client, services) before any subcommand runs. Credentials live in an
// encrypted profile file; commands that need them take the passphrase via
// the persistent -p flag.
package commands
