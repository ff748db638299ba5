package presence

import (
	"context"
	"testing"
	"time"

	"beacon/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Both stores must satisfy the domain port.
var (
	_ service.PresenceStore = (*memoryStore)(nil)
	_ service.PresenceStore = (*redisStore)(nil)
)

func TestMemoryStore_LeaseLifecycle(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	ctx := context.Background()
	userID := uuid.New()

	online, err := store.IsOnline(ctx, userID)
	require.NoError(t, err)
	assert.False(t, online)

	require.NoError(t, store.SetOnline(ctx, userID, time.Minute))

	online, err = store.IsOnline(ctx, userID)
	require.NoError(t, err)
	assert.True(t, online)

	require.NoError(t, store.SetOffline(ctx, userID))

	online, err = store.IsOnline(ctx, userID)
	require.NoError(t, err)
	assert.False(t, online)
}

func TestMemoryStore_LeaseExpires(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, store.SetOnline(ctx, userID, 10*time.Millisecond))
	time.Sleep(30 * time.Millisecond)

	online, err := store.IsOnline(ctx, userID)
	require.NoError(t, err)
	assert.False(t, online)
}

func TestMemoryStore_RefreshExtendsLease(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, store.SetOnline(ctx, userID, 40*time.Millisecond))
	time.Sleep(25 * time.Millisecond)
	require.NoError(t, store.Refresh(ctx, userID, 40*time.Millisecond))
	time.Sleep(25 * time.Millisecond)

	// The original lease would have lapsed by now; the refresh kept it alive.
	online, err := store.IsOnline(ctx, userID)
	require.NoError(t, err)
	assert.True(t, online)
}

func TestMemoryStore_RefreshAfterExpiryMarksOnlineAgain(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, store.SetOnline(ctx, userID, 10*time.Millisecond))
	time.Sleep(30 * time.Millisecond)

	require.NoError(t, store.Refresh(ctx, userID, time.Minute))

	online, err := store.IsOnline(ctx, userID)
	require.NoError(t, err)
	assert.True(t, online)
}

func TestMemoryStore_SetOfflineIsIdempotent(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, store.SetOffline(ctx, userID))
	require.NoError(t, store.SetOffline(ctx, userID))
}
