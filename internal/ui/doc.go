// Package ui holds the Bubble Tea terminal views: the live board page
// driven by a game session, and the static renderers the one-shot
// commands print. It is presentation only; every action is delegated
// to the session and nothing here talks to the network.
package ui
