// Package domain defines core data models and interfaces shared across the
// client. It contains plain types (credentials, auth results) and contracts
// (interfaces) only; wire types live in pkg/protocol.
package domain
