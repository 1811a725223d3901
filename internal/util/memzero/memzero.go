package memzero

import "crypto/subtle"

// Zero overwrites b with zeros in a constant-time friendly way. Used to
// shorten the in-memory lifetime of decoded credential bytes.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	zero := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zero)
}
