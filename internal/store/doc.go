// Package store provides file-based persistence for the client's local
// state.
//
// It contains concrete implementations of the domain storage interfaces,
// serialising data as JSON on disk. All methods are concurrency-safe via
// internal locking. Stored files live under the client's configured home
// directory, typically ~/.pinopoly.
//
// The package includes:
//   - The encrypted credential profile (ProfileStore): username+PIN, admin
//     key and display key, sealed under a local passphrase.
//   - A plaintext cache of the public board layout (BoardCache), used for
//     offline rendering when the server is unreachable.
package store
