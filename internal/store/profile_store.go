package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"pinopoly/internal/crypto"
	"pinopoly/internal/domain"
	"pinopoly/internal/util/memzero"
)

const profileFile = "profile.enc"

// ProfileStore persists the credential profile to disk, encrypted under a
// local passphrase. The server remains the only validator of the
// credentials themselves.
type ProfileStore struct {
	dir string
	mu  sync.Mutex
}

// NewProfileStore returns a ProfileStore rooted at dir.
func NewProfileStore(dir string) *ProfileStore {
	return &ProfileStore{dir: dir}
}

// SaveProfile seals the profile and writes it atomically.
func (s *ProfileStore) SaveProfile(passphrase string, p domain.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	defer memzero.Zero(raw)

	blob, err := crypto.Seal(passphrase, raw)
	if err != nil {
		return err
	}
	return writeFile(filepath.Join(s.dir, profileFile), blob, 0o600)
}

// LoadProfile reads and decrypts the profile. A missing file means "not
// logged in" and is reported via ok, not an error.
func (s *ProfileStore) LoadProfile(passphrase string) (domain.Profile, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := os.ReadFile(filepath.Join(s.dir, profileFile))
	if errors.Is(err, os.ErrNotExist) {
		return domain.Profile{}, false, nil
	}
	if err != nil {
		return domain.Profile{}, false, err
	}

	raw, err := crypto.Open(passphrase, blob)
	if err != nil {
		return domain.Profile{}, false, err
	}
	defer memzero.Zero(raw)

	var p domain.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return domain.Profile{}, false, err
	}
	return p, true, nil
}

// ClearProfile removes the stored profile. Clearing an absent profile is
// not an error.
func (s *ProfileStore) ClearProfile() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(filepath.Join(s.dir, profileFile))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Compile-time assertion that ProfileStore implements domain.CredentialStore.
var _ domain.CredentialStore = (*ProfileStore)(nil)
