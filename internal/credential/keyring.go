package credential

import (
	"fmt"

	"github.com/99designs/keyring"
)

const serviceName = "planner"

// TokenSecretKey is the keyring entry holding the identity token secret.
const TokenSecretKey = "token-secret"

// open is replaced in tests with an in-memory keyring.
var open = openKeyring

// openKeyring returns a configured keyring instance.
func openKeyring() (keyring.Keyring, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName: serviceName,
		AllowedBackends: []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.SecretServiceBackend,
			keyring.WinCredBackend,
			keyring.PassBackend,
			keyring.FileBackend,
		},
		FileDir:                  "~/.config/planner/credentials",
		FilePasswordFunc:         keyring.FixedStringPrompt("planner-file-key"),
		KeychainTrustApplication: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening keyring: %w", err)
	}
	return ring, nil
}

// Get retrieves a credential value by key from the system keyring.
func Get(key string) (string, error) {
	ring, err := open()
	if err != nil {
		return "", err
	}

	item, err := ring.Get(key)
	if err != nil {
		return "", fmt.Errorf("getting credential %q: %w", key, err)
	}

	return string(item.Data), nil
}

// Set stores a credential value by key in the system keyring.
func Set(key string, value string) error {
	ring, err := open()
	if err != nil {
		return err
	}

	err = ring.Set(keyring.Item{
		Key:         key,
		Label:       serviceName + " " + key,
		Description: "planner API credential",
		Data:        []byte(value),
	})
	if err != nil {
		return fmt.Errorf("setting credential %q: %w", key, err)
	}

	return nil
}

// TokenSecret resolves the identity token secret: configured wins,
// otherwise the keyring entry is used.
func TokenSecret(configured string) ([]byte, error) {
	if configured != "" {
		return []byte(configured), nil
	}
	secret, err := Get(TokenSecretKey)
	if err != nil {
		return nil, err
	}
	if secret == "" {
		return nil, fmt.Errorf("credential %q is empty", TokenSecretKey)
	}
	return []byte(secret), nil
}
