package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"geraetewart-server/internal/infra/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRistrettoCacheSetGet(t *testing.T) {
	c, err := cache.New(nil)
	require.NoError(t, err)

	ctx := context.Background()
	ok := c.Set(ctx, "settings:mail_sender", "wart@feuerwehr.example", time.Minute)
	require.True(t, ok)

	// ristretto applies writes asynchronously
	assert.Eventually(t, func() bool {
		value, found := c.Get(ctx, "settings:mail_sender")
		return found && value == "wart@feuerwehr.example"
	}, time.Second, 10*time.Millisecond)
}

func TestRistrettoCacheGetOrSet(t *testing.T) {
	c, err := cache.New(nil)
	require.NoError(t, err)

	ctx := context.Background()
	calls := 0
	loader := func() (any, error) {
		calls++
		return "loaded", nil
	}

	value, err := c.GetOrSet(ctx, "key", time.Minute, loader)
	require.NoError(t, err)
	assert.Equal(t, "loaded", value)
	assert.Equal(t, 1, calls)
}

func TestRistrettoCacheGetOrSetLoaderError(t *testing.T) {
	c, err := cache.New(nil)
	require.NoError(t, err)

	loader := func() (any, error) {
		return nil, errors.New("store unavailable")
	}

	_, err = c.GetOrSet(context.Background(), "key", time.Minute, loader)
	assert.Error(t, err)
}

func TestRistrettoCacheDelete(t *testing.T) {
	c, err := cache.New(nil)
	require.NoError(t, err)

	ctx := context.Background()
	c.Set(ctx, "key", "value", time.Minute)
	c.Delete(ctx, "key")

	_, found := c.Get(ctx, "key")
	assert.False(t, found)
}
