package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestCache(t *testing.T) *Client {
	mr := miniredis.RunT(t)
	client, err := NewClient("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client
}

func TestSetAndGet(t *testing.T) {
	client := setupTestCache(t)
	ctx := context.Background()

	err := client.Set(ctx, "greeting", "bonjour", time.Minute)
	require.NoError(t, err)

	value, err := client.Get(ctx, "greeting")
	require.NoError(t, err)
	assert.Equal(t, "bonjour", value)
}

func TestGet_Missing(t *testing.T) {
	client := setupTestCache(t)

	_, err := client.Get(context.Background(), "nope")
	assert.Error(t, err)
}

func TestDelete(t *testing.T) {
	client := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "key", "value", time.Minute))
	require.NoError(t, client.Delete(ctx, "key"))

	exists, err := client.Exists(ctx, "key")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDeletePattern(t *testing.T) {
	client := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "prospects:list:1", "a", time.Minute))
	require.NoError(t, client.Set(ctx, "prospects:list:2", "b", time.Minute))
	require.NoError(t, client.Set(ctx, "visits:list:1", "c", time.Minute))

	require.NoError(t, client.DeletePattern(ctx, "prospects:list:*"))

	exists, err := client.Exists(ctx, "prospects:list:1")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = client.Exists(ctx, "visits:list:1")
	require.NoError(t, err)
	assert.True(t, exists)
}
