package cache_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teesheet/infras/otel/mocks"
	"teesheet/shared/cache"
)

func newTestCache(t *testing.T) (cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := goRedis.NewClient(&goRedis.Options{Addr: server.Addr()})

	return cache.NewRedisCache(client, mocks.NewOtel()), server
}

func TestRedisCache_SaveAndGet(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	type payload struct {
		CourseID string `json:"course_id"`
		Players  int    `json:"players"`
	}

	err := c.Save(ctx, "booking:availability:test", payload{CourseID: "sterling_hills", Players: 2}, 60)
	require.NoError(t, err)

	var got payload
	err = c.Get(ctx, "booking:availability:test", &got)
	require.NoError(t, err)
	assert.Equal(t, "sterling_hills", got.CourseID)
	assert.Equal(t, 2, got.Players)
}

func TestRedisCache_SaveAndGetString(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	err := c.Save(ctx, "plain", "value", 60)
	require.NoError(t, err)

	var got string
	err = c.Get(ctx, "plain", &got)
	require.NoError(t, err)
	assert.Equal(t, "value", got)
}

func TestRedisCache_GetMiss(t *testing.T) {
	c, _ := newTestCache(t)

	var got int
	err := c.Get(context.Background(), "absent", &got)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, cache.Nil))
}

func TestRedisCache_Delete(t *testing.T) {
	c, server := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Save(ctx, "doomed", 1, 60))
	require.NoError(t, c.Delete(ctx, "doomed"))

	assert.False(t, server.Exists("doomed"))
}

func TestRedisCache_Clear(t *testing.T) {
	c, server := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Save(ctx, "booking:bookings:a", 1, 60))
	require.NoError(t, c.Save(ctx, "booking:bookings:b", 2, 60))
	require.NoError(t, c.Save(ctx, "booking:availability:a", 3, 60))

	require.NoError(t, c.Clear(ctx, "booking:bookings:*"))

	assert.False(t, server.Exists("booking:bookings:a"))
	assert.False(t, server.Exists("booking:bookings:b"))
	assert.True(t, server.Exists("booking:availability:a"))
}
