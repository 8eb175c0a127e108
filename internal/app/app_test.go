package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/SergeyBogomolovv/storefront/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) PingContext(ctx context.Context) error { return f(ctx) }

type starterFunc func(ctx context.Context) error

func (f starterFunc) Start(ctx context.Context) error { return f(ctx) }

type fakeConsumer struct {
	started  chan struct{}
	closed   atomic.Bool
	closeErr error
}

func (c *fakeConsumer) Consume(ctx context.Context) {
	close(c.started)
	<-ctx.Done()
}

func (c *fakeConsumer) Close() error {
	c.closed.Store(true)
	return c.closeErr
}

type pingHandler struct{}

func (pingHandler) Init(r chi.Router) {
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func testApp() *application {
	cfg := config.New()
	cfg.Http.Host = "127.0.0.1"
	cfg.Http.Port = "0"
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)), cfg)
}

func TestHealthz(t *testing.T) {
	testCases := []struct {
		name       string
		checks     []HealthChecker
		wantStatus int
	}{
		{
			name:       "no checks",
			wantStatus: http.StatusOK,
		},
		{
			name: "database up",
			checks: []HealthChecker{
				pingFunc(func(context.Context) error { return nil }),
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "database down",
			checks: []HealthChecker{
				pingFunc(func(context.Context) error { return nil }),
				pingFunc(func(context.Context) error { return errors.New("connection refused") }),
			},
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := testApp()
			a.SetHealthChecks(tc.checks...)

			rec := httptest.NewRecorder()
			a.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestSetHTTPHandlers(t *testing.T) {
	a := testApp()
	a.SetHTTPHandlers(pingHandler{})

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestStartStop(t *testing.T) {
	a := testApp()

	var started atomic.Int32
	a.SetStarters(
		starterFunc(func(context.Context) error { started.Add(1); return nil }),
		starterFunc(func(context.Context) error { started.Add(1); return nil }),
	)
	consumer := &fakeConsumer{started: make(chan struct{})}
	a.SetConsumers(consumer)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, a.Start(ctx))
	<-consumer.started
	assert.Equal(t, int32(2), started.Load())

	require.NoError(t, a.Stop())
	assert.True(t, consumer.closed.Load())
}

func TestStart_StarterFails(t *testing.T) {
	a := testApp()
	a.SetStarters(starterFunc(func(context.Context) error { return errors.New("redis unavailable") }))
	consumer := &fakeConsumer{started: make(chan struct{})}
	a.SetConsumers(consumer)

	err := a.Start(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "redis unavailable")

	select {
	case <-consumer.started:
		t.Fatal("consumer must not start when a starter fails")
	default:
	}
}

func TestStop_JoinsConsumerErrors(t *testing.T) {
	a := testApp()
	closeErr := errors.New("kafka close")
	a.SetConsumers(&fakeConsumer{started: make(chan struct{}), closeErr: closeErr})

	err := a.Stop()
	assert.ErrorIs(t, err, closeErr)
}
