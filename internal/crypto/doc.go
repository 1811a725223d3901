// Package crypto exposes the minimal primitives used by the Pi-nopoly
// client.
//
// Contents
//
//   - A passphrase envelope for the on-disk credential profile
//     (Seal, Open): scrypt key derivation + ChaCha20-Poly1305.
//   - Short fingerprints for display/logging of stored keys without
//     printing them (Fingerprint).
//
// # Notes
//
// Credentials are opaque to the client; nothing here interprets them. The
// envelope exists so a PIN or admin key never sits in plaintext on disk.
package crypto
