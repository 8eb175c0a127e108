package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("POSTGRES_USER", "storefront")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("ADMIN_TOKEN", "0123456789abcdef")

	cfg := New()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "lru", cfg.Cache.Driver)
	assert.Equal(t, 2*time.Minute, cfg.Payments.Freshness)
	assert.Equal(t, 15*time.Second, cfg.Payments.Timeout)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		env     map[string]string
		wantErr bool
	}{
		{
			name:    "redis driver requires address",
			env:     map[string]string{"CACHE_DRIVER": "redis"},
			wantErr: true,
		},
		{
			name: "redis driver with address",
			env:  map[string]string{"CACHE_DRIVER": "redis", "REDIS_ADDR": "localhost:6379"},
		},
		{
			name:    "unknown cache driver",
			env:     map[string]string{"CACHE_DRIVER": "memcached"},
			wantErr: true,
		},
		{
			name:    "short admin token",
			env:     map[string]string{"ADMIN_TOKEN": "admin"},
			wantErr: true,
		},
		{
			name:    "bad currency",
			env:     map[string]string{"HOSTED_CURRENCY": "shilling"},
			wantErr: true,
		},
		{
			name: "custom durations",
			env:  map[string]string{"PAYMENT_FRESHNESS_WINDOW": "5m", "PAYMENT_PROVIDER_TIMEOUT": "3s"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("POSTGRES_USER", "storefront")
			t.Setenv("POSTGRES_PASSWORD", "secret")
			t.Setenv("ADMIN_TOKEN", "0123456789abcdef")
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			err := New().Validate()
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
