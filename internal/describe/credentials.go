package describe

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/tartampluch/analog-clock/internal/config"
	"github.com/zalando/go-keyring"
)

// CredentialSource resolves the API key for the generation service.
type CredentialSource interface {
	APIKey() (string, error)
}

// KeyringCredentials reads the key from the OS keyring, then from the
// GEMINI_API_KEY and API_KEY environment variables.
type KeyringCredentials struct {
	Service string
	User    string
}

// NewKeyringCredentials returns the application's credential source.
func NewKeyringCredentials() KeyringCredentials {
	return KeyringCredentials{Service: config.KeyringService, User: config.KeyringAPIUser}
}

// APIKey implements CredentialSource.
func (k KeyringCredentials) APIKey() (string, error) {
	key, err := keyring.Get(k.Service, k.User)
	if err == nil && key != "" {
		return key, nil
	}
	if err != nil {
		slog.Debug(config.ErrKeyringRead,
			config.LogKeyComponent, config.CompDescribe,
			config.LogKeyError, err)
	}

	for _, env := range []string{config.EnvAPIKey, config.EnvAPIKeyLegacy} {
		if v := os.Getenv(env); v != "" {
			return v, nil
		}
	}
	return "", ErrNoCredential
}

// Stored returns the key held in the keyring, ignoring the environment.
func (k KeyringCredentials) Stored() (string, error) {
	key, err := keyring.Get(k.Service, k.User)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrKeyringRead, err)
	}
	return key, nil
}

// Save stores key in the keyring. An empty key removes the stored entry.
func (k KeyringCredentials) Save(key string) error {
	if key == "" {
		if err := keyring.Delete(k.Service, k.User); err != nil && !errors.Is(err, keyring.ErrNotFound) {
			return fmt.Errorf("%s: %w", config.ErrKeyringSave, err)
		}
		return nil
	}
	if err := keyring.Set(k.Service, k.User, key); err != nil {
		return fmt.Errorf("%s: %w", config.ErrKeyringSave, err)
	}
	return nil
}

// StaticKey is a fixed credential, mostly useful in tests.
type StaticKey string

// APIKey implements CredentialSource.
func (s StaticKey) APIKey() (string, error) {
	if s == "" {
		return "", ErrNoCredential
	}
	return string(s), nil
}
