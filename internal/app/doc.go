// Package app wires application dependencies for the CLI.
//
// It resolves configuration (flags over environment over an optional YAML
// file over defaults) and builds the concrete stores, API and socket
// clients, services, and logger from Config, exposing them via the Wire
// struct for commands to use.
package app
