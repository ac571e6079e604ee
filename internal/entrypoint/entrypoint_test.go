package entrypoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/crypto"
)

func TestNewStateEncryptor(t *testing.T) {
	enc, err := NewStateEncryptor(config.State{})
	require.NoError(t, err)
	assert.Nil(t, enc)

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	enc, err = NewStateEncryptor(config.State{EncryptionKey: key, Passphrase: "ignored"})
	require.NoError(t, err)
	require.NotNil(t, enc)

	sealed, err := enc.EncryptString("snapshot")
	require.NoError(t, err)
	fromKey, err := crypto.NewEncryptorFromBase64(key)
	require.NoError(t, err)
	plain, err := fromKey.DecryptString(sealed)
	require.NoError(t, err)
	assert.Equal(t, "snapshot", plain)

	enc, err = NewStateEncryptor(config.State{Passphrase: "correct horse"})
	require.NoError(t, err)
	assert.NotNil(t, enc)

	_, err = NewStateEncryptor(config.State{EncryptionKey: "not base64!"})
	assert.Error(t, err)
}

func TestCSRFSecret(t *testing.T) {
	assert.Nil(t, csrfSecret(""))
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, csrfSecret("deadbeef"))
	assert.Equal(t, []byte("plain-secret"), csrfSecret("plain-secret"))
}

func TestNewSeeder_FixedSeedIsDeterministic(t *testing.T) {
	cfg := config.Demo{Seed: 7}
	a := NewSeeder(cfg).GenerateUsers()
	b := NewSeeder(cfg).GenerateUsers()
	assert.Equal(t, a, b)

	books := NewSeeder(cfg).GenerateBooks()
	require.Len(t, books, 30)
	assert.Empty(t, books[0].Content)
}
