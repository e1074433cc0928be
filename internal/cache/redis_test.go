package cache

import (
	"context"
	"testing"
	"time"

	"speedxpress/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*AccountTypeCache, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	c := NewAccountTypeCache(srv.Addr(), "", 0, time.Minute)
	t.Cleanup(func() { _ = c.Close() })
	return c, srv
}

func TestAccountTypeCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t)

	_, ok, err := c.Get(ctx, "m@x.com")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "m@x.com", models.AccountMerchant))
	at, ok, err := c.Get(ctx, "m@x.com")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, models.AccountMerchant, at)

	require.NoError(t, c.Delete(ctx, "m@x.com"))
	_, ok, err = c.Get(ctx, "m@x.com")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAccountTypeCacheExpires(t *testing.T) {
	ctx := context.Background()
	c, srv := newTestCache(t)

	require.NoError(t, c.Set(ctx, "e@x.com", models.AccountEmployee))
	srv.FastForward(2 * time.Minute)

	_, ok, err := c.Get(ctx, "e@x.com")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAccountTypeCacheFlush(t *testing.T) {
	ctx := context.Background()
	c, srv := newTestCache(t)

	require.NoError(t, c.Set(ctx, "a@x.com", models.AccountAdmin))
	require.NoError(t, c.Set(ctx, "b@x.com", models.AccountCustomer))
	require.NoError(t, srv.Set("unrelated", "keep"))

	require.NoError(t, c.Flush(ctx))

	_, ok, _ := c.Get(ctx, "a@x.com")
	assert.False(t, ok)
	_, ok, _ = c.Get(ctx, "b@x.com")
	assert.False(t, ok)
	assert.True(t, srv.Exists("unrelated"))
	assert.NoError(t, c.Ping(ctx))
}
