package token

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerIssueAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	m := NewManager("secret-test", time.Hour, NewMemoryStore())

	signed, err := m.Issue(ctx, 42)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	userID, jti, err := m.Authenticate(ctx, signed)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
	assert.NotEmpty(t, jti)
}

func TestManagerRejectsWrongSecret(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	issuer := NewManager("secret-a", time.Hour, store)
	verifier := NewManager("secret-b", time.Hour, store)

	signed, err := issuer.Issue(ctx, 1)
	require.NoError(t, err)

	_, _, err = verifier.Authenticate(ctx, signed)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestManagerRejectsGarbage(t *testing.T) {
	m := NewManager("secret-test", time.Hour, NewMemoryStore())

	_, _, err := m.Authenticate(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestManagerRevokeInvalidatesSingleToken(t *testing.T) {
	ctx := context.Background()
	m := NewManager("secret-test", time.Hour, NewMemoryStore())

	first, err := m.Issue(ctx, 7)
	require.NoError(t, err)
	second, err := m.Issue(ctx, 7)
	require.NoError(t, err)

	_, jti, err := m.Authenticate(ctx, first)
	require.NoError(t, err)

	require.NoError(t, m.Revoke(ctx, jti))

	// Token yang dicabut mati, token lain milik user yang sama tetap hidup.
	_, _, err = m.Authenticate(ctx, first)
	assert.ErrorIs(t, err, ErrInvalid)

	_, _, err = m.Authenticate(ctx, second)
	assert.NoError(t, err)
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Save(ctx, "jti-expired", 9, -time.Minute))

	_, err := store.Resolve(ctx, "jti-expired")
	assert.ErrorIs(t, err, ErrInvalid)
}
