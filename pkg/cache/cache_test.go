package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLRUCache(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		ttl      time.Duration
		actions  func(t *testing.T, c *LRUCache)
	}{
		{
			name:     "set and get within TTL",
			capacity: 2,
			ttl:      time.Second,
			actions: func(t *testing.T, c *LRUCache) {
				c.Set("order:1", []byte("paid"))
				v, ok := c.Get("order:1")
				require.True(t, ok)
				assert.Equal(t, "paid", string(v))
			},
		},
		{
			name:     "miss",
			capacity: 2,
			ttl:      time.Second,
			actions: func(t *testing.T, c *LRUCache) {
				_, ok := c.Get("discount:SAVE10")
				assert.False(t, ok)
			},
		},
		{
			name:     "get after expiration",
			capacity: 2,
			ttl:      50 * time.Millisecond,
			actions: func(t *testing.T, c *LRUCache) {
				c.Set("order:1", []byte("paid"))
				time.Sleep(60 * time.Millisecond)
				_, ok := c.Get("order:1")
				assert.False(t, ok)
				assert.Zero(t, c.Size())
			},
		},
		{
			name:     "evict least recently used",
			capacity: 2,
			ttl:      time.Second,
			actions: func(t *testing.T, c *LRUCache) {
				c.Set("order:1", []byte("1"))
				c.Set("order:2", []byte("2"))
				// order:1 становится самым свежим
				_, ok := c.Get("order:1")
				require.True(t, ok)
				c.Set("order:3", []byte("3"))

				_, ok = c.Get("order:2")
				assert.False(t, ok)
				_, ok = c.Get("order:1")
				assert.True(t, ok)
				_, ok = c.Get("order:3")
				assert.True(t, ok)
				assert.Equal(t, 2, c.Size())
			},
		},
		{
			name:     "update value resets TTL",
			capacity: 2,
			ttl:      50 * time.Millisecond,
			actions: func(t *testing.T, c *LRUCache) {
				c.Set("discount:SAVE10", []byte("10"))
				time.Sleep(30 * time.Millisecond)
				c.Set("discount:SAVE10", []byte("15"))
				time.Sleep(30 * time.Millisecond)
				v, ok := c.Get("discount:SAVE10")
				require.True(t, ok)
				assert.Equal(t, "15", string(v))
				assert.Equal(t, 1, c.Size())
			},
		},
		{
			name:     "cleanup removes expired",
			capacity: 4,
			ttl:      50 * time.Millisecond,
			actions: func(t *testing.T, c *LRUCache) {
				ctx, cancel := context.WithCancel(context.Background())
				defer cancel()
				require.NoError(t, c.Start(ctx))

				c.Set("order:1", []byte("1"))
				c.Set("order:2", []byte("2"))
				time.Sleep(60 * time.Millisecond)

				c.cleanup()
				assert.Zero(t, c.Size())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewLRUCache(tt.capacity, tt.ttl)
			tt.actions(t, c)
		})
	}
}

func TestLRUCache_Concurrent(t *testing.T) {
	c := NewLRUCache(64, time.Second)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 100 {
				key := fmt.Sprintf("order:%d", (i*100+j)%128)
				c.Set(key, []byte(key))
				c.Get(key)
			}
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Size(), 64)
}
