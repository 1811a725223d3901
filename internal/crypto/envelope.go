package crypto

import (
	"crypto/rand"
	"encoding/json"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"
)

// scrypt envelope (parameters fixed here; tune as needed)
func scryptParamsDefault() (N, r, p int) { return 1 << 15, 8, 1 }

type envelope struct {
	Salt []byte
	CT   []byte
}

// Seal encrypts plaintext under a passphrase-derived key. The salt doubles
// as associated data so an envelope cannot be re-homed onto another salt.
func Seal(passphrase string, plaintext []byte) ([]byte, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	N, r, p := scryptParamsDefault()
	key, err := scrypt.Key([]byte(passphrase), salt, N, r, p, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, aead.NonceSize())
	ct := aead.Seal(nil, nonce, plaintext, salt)
	return json.Marshal(envelope{Salt: salt, CT: ct})
}

// Open decrypts an envelope produced by Seal. A wrong passphrase surfaces
// as an authentication error from the AEAD.
func Open(passphrase string, blob []byte) ([]byte, error) {
	var env envelope
	if err := json.Unmarshal(blob, &env); err != nil {
		return nil, err
	}
	N, r, p := scryptParamsDefault()
	key, err := scrypt.Key([]byte(passphrase), env.Salt, N, r, p, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, aead.NonceSize())
	return aead.Open(nil, nonce, env.CT, env.Salt)
}
