package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Fingerprint returns a short fingerprint of a stored credential, so whoami
// can show which token or key is loaded without revealing it.
//
// It hashes with SHA-256, truncates to 10 bytes and groups the hex output
// in fours so two fingerprints can be compared by eye.
func Fingerprint(secret []byte) string {
	h := sha256.Sum256(secret)
	s := hex.EncodeToString(h[:10])

	groups := make([]string, 0, len(s)/4)
	for i := 0; i < len(s); i += 4 {
		groups = append(groups, s[i:i+4])
	}
	return strings.Join(groups, "-")
}
