// Package credentials provides secure API token storage for the meetsum CLI.
//
// The token is stored in the system keyring:
// - macOS: Keychain
// - Windows: Credential Manager
// - Linux: Secret Service (libsecret)
//
// For CI and scripted environments, set MEETSUM_API_TOKEN to bypass the
// keyring entirely.
package credentials

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	// keyringService is the service name used in the system keyring.
	keyringService = "meetsum-cli"
	// keyringUser is the user/account name used in the system keyring.
	keyringUser = "api-token"

	// EnvToken is the environment variable that overrides the keyring.
	EnvToken = "MEETSUM_API_TOKEN"
)

// Common errors.
var (
	// ErrNoToken is returned when no token is stored.
	ErrNoToken = errors.New("no API token stored")
	// ErrKeyringUnavailable indicates the system keyring is not available.
	ErrKeyringUnavailable = errors.New("system keyring unavailable")
)

// Store reads and writes the backend API token.
type Store interface {
	// Token returns the stored token, or ErrNoToken if none exists.
	Token() (string, error)

	// Save stores the token, replacing any existing one.
	Save(token string) error

	// Clear removes the stored token. Clearing an empty store is not an
	// error.
	Clear() error

	// Description returns a human-readable description of the storage
	// mechanism, for status output.
	Description() string
}

// KeyringStore stores the token in the system keyring, with the
// MEETSUM_API_TOKEN environment variable taking precedence on reads.
type KeyringStore struct{}

// NewKeyringStore creates a new KeyringStore.
func NewKeyringStore() *KeyringStore {
	return &KeyringStore{}
}

// Token returns the token from the environment if set, otherwise from the
// system keyring.
func (s *KeyringStore) Token() (string, error) {
	if token := strings.TrimSpace(os.Getenv(EnvToken)); token != "" {
		return token, nil
	}

	token, err := keyring.Get(keyringService, keyringUser)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNoToken
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return token, nil
}

// Save stores the token in the system keyring.
func (s *KeyringStore) Save(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("token must not be empty")
	}

	if err := keyring.Set(keyringService, keyringUser, token); err != nil {
		return fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return nil
}

// Clear removes the token from the system keyring.
func (s *KeyringStore) Clear() error {
	err := keyring.Delete(keyringService, keyringUser)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return nil
}

// Description implements Store.
func (s *KeyringStore) Description() string {
	return "system keyring"
}

// MaskToken returns a masked form of the token safe for display,
// e.g. "sk-a...f3c9".
func MaskToken(token string) string {
	if len(token) <= 8 {
		return strings.Repeat("*", len(token))
	}
	return token[:4] + "..." + token[len(token)-4:]
}

// LoadToken returns the token from the default store, or "" when none is
// stored. Commands use it to attach optional authentication; an absent
// token is not an error for a backend that does not require one.
func LoadToken() (string, error) {
	token, err := NewKeyringStore().Token()
	if errors.Is(err, ErrNoToken) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return token, nil
}
