package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookshelf/internal/crypto"
)

func setupTestDB(t *testing.T) *Database {
	t.Helper()
	db, err := NewQuietDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestNewDatabase(t *testing.T) {
	db := setupTestDB(t)
	assert.NoError(t, db.Ping())
}

func TestDatabase_Settings(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.SetSettings(map[string]string{
		"theme.isDarkMode":     "true",
		"theme.readerFontSize": "20",
	}))
	require.NoError(t, db.SetSetting("user", "{}"))

	theme, err := db.GetSettingsByPrefix("theme.")
	require.NoError(t, err)
	assert.Len(t, theme, 2)

	require.NoError(t, db.DeleteSetting("user"))
	_, err = db.GetSetting("user")
	assert.Error(t, err)
}

func TestStateStore_Plain(t *testing.T) {
	db := setupTestDB(t)
	state := NewStateStore(db, nil)

	_, err := state.LoadState("user")
	assert.True(t, IsStateNotFound(err))

	require.NoError(t, state.SaveState("user", []byte(`{"currentUserId":2}`)))
	data, err := state.LoadState("user")
	require.NoError(t, err)
	assert.JSONEq(t, `{"currentUserId":2}`, string(data))

	raw, err := db.GetSetting("user")
	require.NoError(t, err)
	assert.Equal(t, `{"currentUserId":2}`, raw.Value)
}

func TestStateStore_Encrypted(t *testing.T) {
	db := setupTestDB(t)
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	enc, err := crypto.NewEncryptorFromBase64(key)
	require.NoError(t, err)

	state := NewStateStore(db, enc)
	require.NoError(t, state.SaveState("user", []byte(`{"password":"admin"}`)))

	raw, err := db.GetSetting("user")
	require.NoError(t, err)
	assert.NotContains(t, raw.Value, "admin")

	data, err := state.LoadState("user")
	require.NoError(t, err)
	assert.JSONEq(t, `{"password":"admin"}`, string(data))

	t.Run("wrong key cannot read", func(t *testing.T) {
		otherKey, _ := crypto.GenerateKey()
		other, _ := crypto.NewEncryptorFromBase64(otherKey)
		_, err := NewStateStore(db, other).LoadState("user")
		assert.Error(t, err)
		assert.False(t, IsStateNotFound(err))
	})
}
