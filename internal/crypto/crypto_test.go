package crypto

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEncryptor(t *testing.T) *Encryptor {
	t.Helper()
	key, err := GenerateKey()
	require.NoError(t, err)
	enc, err := NewEncryptorFromBase64(key)
	require.NoError(t, err)
	return enc
}

func TestNewEncryptor(t *testing.T) {
	t.Run("valid key size", func(t *testing.T) {
		enc, err := NewEncryptor(make([]byte, 32))
		require.NoError(t, err)
		assert.NotNil(t, enc)
	})

	t.Run("invalid key size", func(t *testing.T) {
		enc, err := NewEncryptor(make([]byte, 16))
		assert.ErrorIs(t, err, ErrInvalidKeySize)
		assert.Nil(t, enc)
	})

	t.Run("invalid base64", func(t *testing.T) {
		enc, err := NewEncryptorFromBase64("not-valid-base64!!!")
		assert.Error(t, err)
		assert.Nil(t, enc)
	})
}

func TestNewEncryptorFromPassphrase(t *testing.T) {
	t.Run("empty passphrase", func(t *testing.T) {
		_, err := NewEncryptorFromPassphrase("")
		assert.ErrorIs(t, err, ErrEmptyPassphrase)
	})

	t.Run("same passphrase opens sealed data", func(t *testing.T) {
		first, err := NewEncryptorFromPassphrase("correct horse")
		require.NoError(t, err)
		second, err := NewEncryptorFromPassphrase("correct horse")
		require.NoError(t, err)

		sealed, err := first.EncryptString(`{"currentUserId":1}`)
		require.NoError(t, err)

		opened, err := second.DecryptString(sealed)
		require.NoError(t, err)
		assert.Equal(t, `{"currentUserId":1}`, opened)
	})

	t.Run("different passphrase fails", func(t *testing.T) {
		first, _ := NewEncryptorFromPassphrase("one")
		second, _ := NewEncryptorFromPassphrase("two")

		sealed, err := first.EncryptString("secret")
		require.NoError(t, err)

		_, err = second.DecryptString(sealed)
		assert.ErrorIs(t, err, ErrDecryptionFailed)
	})
}

func TestEncryptDecrypt(t *testing.T) {
	enc := newTestEncryptor(t)

	t.Run("round trip", func(t *testing.T) {
		plaintext := `{"users":[{"username":"admin","password":"admin"}]}`
		ciphertext, err := enc.EncryptString(plaintext)
		require.NoError(t, err)
		assert.NotContains(t, ciphertext, "admin")

		decrypted, err := enc.DecryptString(ciphertext)
		require.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)
	})

	t.Run("unique ciphertexts for same plaintext", func(t *testing.T) {
		c1, err := enc.EncryptString("same-text")
		require.NoError(t, err)
		c2, err := enc.EncryptString("same-text")
		require.NoError(t, err)
		assert.NotEqual(t, c1, c2)
	})
}

func TestDecryptErrors(t *testing.T) {
	enc := newTestEncryptor(t)

	t.Run("invalid base64", func(t *testing.T) {
		_, err := enc.DecryptString("not-valid-base64!!!")
		assert.Error(t, err)
	})

	t.Run("ciphertext too short", func(t *testing.T) {
		_, err := enc.DecryptString(base64.StdEncoding.EncodeToString([]byte("short")))
		assert.ErrorIs(t, err, ErrCiphertextTooShort)
	})

	t.Run("tampered ciphertext", func(t *testing.T) {
		sealed, err := enc.Seal([]byte("secret"))
		require.NoError(t, err)
		sealed[len(sealed)-1] ^= 0xFF

		_, err = enc.Open(sealed)
		assert.ErrorIs(t, err, ErrDecryptionFailed)
	})

	t.Run("wrong key", func(t *testing.T) {
		ciphertext, err := enc.EncryptString("secret")
		require.NoError(t, err)

		_, err = newTestEncryptor(t).DecryptString(ciphertext)
		assert.ErrorIs(t, err, ErrDecryptionFailed)
	})
}
