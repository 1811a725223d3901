// Package main runs the in-memory Pi-nopoly server used during development
// and tests. It answers the documented REST routes and realtime events with
// canned data so the client can be exercised end-to-end without a real game
// server.
//
// Behaviour
//
//   - All state is held in memory and lost on process exit.
//   - Auth is permissive: any username/PIN pair registers on first use.
//   - Game events are acknowledged with plausible snapshots; no rules run.
//   - The default listen address is :5000.
//
// This server is for local use only. It validates the admin and display
// keys passed on the command line and nothing else.
package main
