// Package finance implements the player-facing loan and CD workflows.
//
// The service validates request shapes client-side (positive amounts, sane
// lap terms, collateral present for a HELOC) purely to fail fast; the
// server re-validates everything and owns all interest and amortization
// math. Terms are expressed in laps, the in-game time unit.
package finance
