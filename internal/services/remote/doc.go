// Package remote drives the Cloudflare Tunnel that exposes a local game
// server to remote players. The tunnel process itself runs server-side;
// this service only starts, stops, and inspects it through /api/remote.
package remote
