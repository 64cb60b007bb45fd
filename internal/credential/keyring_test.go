package credential

import (
	"testing"

	"github.com/99designs/keyring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useArrayKeyring(t *testing.T, items ...keyring.Item) *keyring.ArrayKeyring {
	t.Helper()
	ring := keyring.NewArrayKeyring(items)
	prev := open
	open = func() (keyring.Keyring, error) { return ring, nil }
	t.Cleanup(func() { open = prev })
	return ring
}

func TestTokenSecretPrefersConfiguredValue(t *testing.T) {
	useArrayKeyring(t, keyring.Item{Key: TokenSecretKey, Data: []byte("from-keyring")})

	secret, err := TokenSecret("from-config")
	require.NoError(t, err)
	assert.Equal(t, []byte("from-config"), secret)
}

func TestTokenSecretFromKeyring(t *testing.T) {
	useArrayKeyring(t)

	require.NoError(t, Set(TokenSecretKey, "stored"))
	secret, err := TokenSecret("")
	require.NoError(t, err)
	assert.Equal(t, []byte("stored"), secret)
}

func TestTokenSecretMissingEntry(t *testing.T) {
	useArrayKeyring(t)

	_, err := TokenSecret("")
	require.Error(t, err)
	assert.ErrorIs(t, err, keyring.ErrKeyNotFound)
}

func TestTokenSecretEmptyEntry(t *testing.T) {
	useArrayKeyring(t, keyring.Item{Key: TokenSecretKey, Data: []byte("")})

	_, err := TokenSecret("")
	assert.EqualError(t, err, `credential "token-secret" is empty`)
}
