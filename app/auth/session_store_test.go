package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trs-1342/rss-hattab/app/models"
)

func setupStore(t *testing.T) *SessionStore {
	t.Helper()
	store, err := NewSessionStore("")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func TestSessionLifecycle(t *testing.T) {
	store := setupStore(t)
	user := models.User{Username: "halil", IsAdmin: true}

	session, err := store.Create(user)
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, user, session.User)

	got, err := store.Get(session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.Token, got.Token)
	assert.Equal(t, user, got.User)

	require.NoError(t, store.Delete(session.Token))
	_, err = store.Get(session.Token)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestGetUnknownToken(t *testing.T) {
	store := setupStore(t)

	_, err := store.Get("no-such-token")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSessionsAreIndependent(t *testing.T) {
	store := setupStore(t)

	first, err := store.Create(models.User{Username: "halil", IsAdmin: true})
	require.NoError(t, err)
	second, err := store.Create(models.User{Username: "halil", IsAdmin: true})
	require.NoError(t, err)
	assert.NotEqual(t, first.Token, second.Token)

	require.NoError(t, store.Delete(first.Token))
	_, err = store.Get(second.Token)
	assert.NoError(t, err)
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("gizli-parola")
	require.NoError(t, err)

	assert.True(t, CheckPassword(hash, "gizli-parola"))
	assert.False(t, CheckPassword(hash, "yanlis"))
	assert.False(t, CheckPassword("", "gizli-parola"))
	assert.False(t, CheckPassword("not-a-bcrypt-hash", "gizli-parola"))
}
