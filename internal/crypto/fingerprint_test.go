package crypto

import (
	"regexp"
	"testing"
)

var fpFormat = regexp.MustCompile(`^[0-9a-f]{4}(-[0-9a-f]{4}){4}$`)

func TestFingerprintFormat(t *testing.T) {
	fp := Fingerprint([]byte("player-token"))
	if !fpFormat.MatchString(fp) {
		t.Fatalf("fingerprint %q not in grouped hex form", fp)
	}
}

func TestFingerprintStableAndDistinct(t *testing.T) {
	a := Fingerprint([]byte("admin-key"))
	if b := Fingerprint([]byte("admin-key")); b != a {
		t.Fatalf("same input produced %q and %q", a, b)
	}
	if b := Fingerprint([]byte("display-key")); b == a {
		t.Fatal("distinct credentials share a fingerprint")
	}
}
