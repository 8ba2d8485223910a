package cache

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priyanshi-bakery/storefront/internal/models"
)

// setupTestRedis creates a miniredis server and returns a RedisCache instance
func setupTestRedis(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { client.Close() })

	return NewRedisCache(client), mr
}

func catalogFixture() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Chocolate Truffle Cake", Description: "Rich dark chocolate layers", Price: 10.00, InStock: true},
		{ID: 2, Name: "Butter Croissant", Price: 2.50, InStock: true},
	}
}

func TestGet_Success(t *testing.T) {
	cache, mr := setupTestRedis(t)
	ctx := context.Background()

	data, err := json.Marshal(catalogFixture())
	require.NoError(t, err)
	require.NoError(t, mr.Set(productsKey, string(data)))

	products, err := cache.Get(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, int64(1), products[0].ID)
	assert.Equal(t, "Butter Croissant", products[1].Name)
}

func TestGet_CacheMiss(t *testing.T) {
	cache, _ := setupTestRedis(t)

	products, err := cache.Get(context.Background())
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.Nil(t, products)
}

func TestGet_InvalidJSON(t *testing.T) {
	cache, mr := setupTestRedis(t)

	require.NoError(t, mr.Set(productsKey, "not json"))

	_, err := cache.Get(context.Background())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)
}

func TestSet_ThenGet(t *testing.T) {
	cache, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, catalogFixture()))

	// catalog expires after the configured TTL
	assert.Positive(t, mr.TTL(productsKey))

	products, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestSet_Expires(t *testing.T) {
	cache, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, catalogFixture()))
	mr.FastForward(cache.ttl)

	_, err := cache.Get(ctx)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestInvalidate(t *testing.T) {
	cache, _ := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, catalogFixture()))
	require.NoError(t, cache.Invalidate(ctx))

	_, err := cache.Get(ctx)
	assert.ErrorIs(t, err, ErrCacheMiss)
}
