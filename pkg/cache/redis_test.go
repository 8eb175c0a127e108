package cache

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisCache_UnavailableIsMiss(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := NewRedisCache(logger, client, "test:", time.Minute)

	c.Set("a", []byte("1"))
	v, ok := c.Get("a")
	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestRedisCache_Key(t *testing.T) {
	c := &RedisCache{prefix: "storefront:"}
	assert.Equal(t, "storefront:order:1", c.key("order:1"))
}
