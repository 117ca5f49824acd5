package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	raw, err := svc.Mint(42, "sid-1")
	require.NoError(t, err)

	claims, err := svc.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "sid-1", claims.SessionID)
}

func TestParseRejectsForeignSecret(t *testing.T) {
	raw, err := NewTokenService("secret-a", time.Hour).Mint(1, "sid")
	require.NoError(t, err)

	_, err = NewTokenService("secret-b", time.Hour).Parse(raw)
	assert.Error(t, err)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	raw, err := NewTokenService("test-secret", -time.Minute).Mint(1, "sid")
	require.NoError(t, err)

	_, err = NewTokenService("test-secret", time.Hour).Parse(raw)
	assert.Error(t, err)
}

func TestMemoryStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Lookup(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Save(ctx, "sid-1", 7, time.Hour))

	userID, err := store.Lookup(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, uint(7), userID)

	require.NoError(t, store.Revoke(ctx, "sid-1"))
	_, err = store.Lookup(ctx, "sid-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Save(ctx, "sid-1", 7, -time.Second))

	_, err := store.Lookup(ctx, "sid-1")
	assert.ErrorIs(t, err, ErrNotFound)
}
