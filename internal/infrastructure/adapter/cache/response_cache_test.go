package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	coremocks "github.com/adhishcp/upi-app/mocks/port/core"
)

func newCacheUnderTest(t *testing.T, ttl time.Duration) (*ResponseCache, *miniredis.Miniredis) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()

	return NewResponseCacheWithClient(client, ttl, mockLogger), server
}

func TestResponseCache_RoundTrip(t *testing.T) {
	cache, server := newCacheUnderTest(t, time.Hour)
	ctx := context.Background()
	payload := json.RawMessage(`{"transaction_id":"txn-1","status":"COMPLETED"}`)

	cache.Set(ctx, "key-1", payload)

	got := cache.Get(ctx, "key-1")
	assert.JSONEq(t, string(payload), string(got))

	// keys are namespaced so they cannot collide with other redis users
	stored, err := server.Get("idem:key-1")
	require.NoError(t, err)
	assert.JSONEq(t, string(payload), stored)
}

func TestResponseCache_MissReturnsNil(t *testing.T) {
	cache, _ := newCacheUnderTest(t, time.Hour)

	assert.Nil(t, cache.Get(context.Background(), "never-seen"))
}

func TestResponseCache_EntriesExpire(t *testing.T) {
	cache, server := newCacheUnderTest(t, time.Minute)
	ctx := context.Background()

	cache.Set(ctx, "key-1", json.RawMessage(`{"ok":true}`))

	ttl := server.TTL("idem:key-1")
	assert.Equal(t, time.Minute, ttl)

	server.FastForward(2 * time.Minute)
	assert.Nil(t, cache.Get(ctx, "key-1"))
}

func TestResponseCache_ServerDownDegradesToMiss(t *testing.T) {
	cache, server := newCacheUnderTest(t, time.Hour)
	ctx := context.Background()

	cache.Set(ctx, "key-1", json.RawMessage(`{"ok":true}`))
	server.Close()

	// reads and writes against a dead server must not error out
	assert.Nil(t, cache.Get(ctx, "key-1"))
	cache.Set(ctx, "key-2", json.RawMessage(`{"ok":true}`))
}
