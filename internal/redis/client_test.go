package redis_test

import (
	"context"
	"testing"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/opr-tts-api/internal/redis"
	"github.com/KirkDiggler/opr-tts-api/internal/testutils"
)

func TestNewClientRequiresEndpoint(t *testing.T) {
	_, err := redis.NewClient("", nil)
	assert.Error(t, err)
}

func TestNewClientTLS(t *testing.T) {
	client, err := redis.NewClient("localhost:6380", &redis.Options{UseTLS: true, DB: 3})
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	single, ok := client.(*goredis.Client)
	require.True(t, ok)
	opts := single.Options()
	require.NotNil(t, opts.TLSConfig)
	assert.Equal(t, 3, opts.DB)
}

func TestClientTalksToRedis(t *testing.T) {
	client, cleanup := testutils.CreateTestRedisClient(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, client.Ping(ctx).Err())
	require.NoError(t, client.Set(ctx, "list:abc", "{}", 0).Err())

	got, err := client.Get(ctx, "list:abc").Result()
	require.NoError(t, err)
	assert.Equal(t, "{}", got)
}
