// Package admin implements game administration: bot management, game
// lifecycle, player removal, and the admin finance operations.
//
// Lifecycle and bot operations travel over the realtime channel (they are
// socket events in the wire contract); finance operations are REST. Every
// operation is gated server-side on the admin key; this package only
// forwards it.
package admin
