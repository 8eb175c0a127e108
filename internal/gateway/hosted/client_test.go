package hosted

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront/internal/entities"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.Handler) *Client {
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := New(logger, Config{
		BaseURL:       srv.URL,
		SecretKey:     "sk_test",
		WebhookSecret: "whsec",
		CallbackURL:   "https://shop.example.com/verify",
		Currency:      "KES",
	}, srv.Client())
	c.newRef = func() string { return "ref-1" }
	return c
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func TestClient_Charge(t *testing.T) {
	var got initializeRequest
	r := chi.NewRouter()
	r.Post("/transaction/initialize", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeJSON(w, http.StatusOK, map[string]any{
			"status":  true,
			"message": "Authorization URL created",
			"data": map[string]string{
				"authorization_url": "https://checkout.example.com/abc",
				"reference":         got.Reference,
			},
		})
	})
	c := newTestClient(t, r)

	res, err := c.Charge(context.Background(), entities.ChargeRequest{
		OrderID: "order-1",
		Amount:  decimal.RequireFromString("990.40"),
		Email:   "jane@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, entities.ChargeResult{
		CorrelationID: "ref-1",
		RedirectURL:   "https://checkout.example.com/abc",
		Message:       "Authorization URL created",
	}, res)
	assert.Equal(t, int64(99040), got.Amount)
	assert.Equal(t, "ref-1", got.Reference)
	assert.Equal(t, "KES", got.Currency)
	assert.Equal(t, "order-1", got.Metadata["order_id"])
}

func TestClient_ChargeErrors(t *testing.T) {
	testCases := []struct {
		name    string
		email   string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			name:    "missing email",
			wantErr: entities.ErrInvalidInput,
		},
		{
			name:  "rejected",
			email: "jane@example.com",
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, map[string]any{"status": false, "message": "Invalid amount"})
			},
		},
		{
			name:  "provider down",
			email: "jane@example.com",
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusServiceUnavailable, map[string]any{"status": false, "message": "maintenance"})
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := chi.NewRouter()
			if tc.handler != nil {
				r.Post("/transaction/initialize", tc.handler)
			}
			c := newTestClient(t, r)

			_, err := c.Charge(context.Background(), entities.ChargeRequest{
				OrderID: "order-1",
				Amount:  decimal.NewFromInt(100),
				Email:   tc.email,
			})
			require.Error(t, err)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestClient_Query(t *testing.T) {
	testCases := []struct {
		name  string
		data  map[string]any
		check func(t *testing.T, ev entities.PaymentEvent)
	}{
		{
			name: "success",
			data: map[string]any{"reference": "ref-1", "status": "success", "amount": 99040, "paid_at": "2025-06-15T09:30:00Z", "gateway_response": "Approved"},
			check: func(t *testing.T, ev entities.PaymentEvent) {
				assert.True(t, ev.Success)
				assert.Equal(t, time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC), ev.PaidAt)
				assert.True(t, decimal.RequireFromString("990.40").Equal(ev.Amount))
			},
		},
		{
			name: "abandoned",
			data: map[string]any{"reference": "ref-1", "status": "abandoned"},
			check: func(t *testing.T, ev entities.PaymentEvent) {
				assert.False(t, ev.Success)
				assert.False(t, ev.Pending)
				assert.Equal(t, "abandoned", ev.Reason)
			},
		},
		{
			name: "ongoing",
			data: map[string]any{"reference": "ref-1", "status": "ongoing"},
			check: func(t *testing.T, ev entities.PaymentEvent) {
				assert.True(t, ev.Pending)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := chi.NewRouter()
			r.Get("/transaction/verify/{reference}", func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "ref-1", chi.URLParam(r, "reference"))
				writeJSON(w, http.StatusOK, map[string]any{"status": true, "message": "Verification successful", "data": tc.data})
			})
			c := newTestClient(t, r)

			ev, err := c.Query(context.Background(), "ref-1")
			require.NoError(t, err)
			assert.Equal(t, "ref-1", ev.CorrelationID)
			tc.check(t, ev)
		})
	}
}

func TestClient_ParseEvent(t *testing.T) {
	c := New(slog.New(slog.NewTextHandler(io.Discard, nil)), Config{WebhookSecret: "whsec"}, http.DefaultClient)

	testCases := []struct {
		name    string
		body    string
		want    entities.PaymentEvent
		wantErr error
	}{
		{
			name: "charge success",
			body: `{"event":"charge.success","data":{"reference":"ref-1","status":"success","amount":100000,"paid_at":"2025-06-15T12:30:00+03:00"}}`,
			want: entities.PaymentEvent{
				CorrelationID: "ref-1",
				Success:       true,
				ResultCode:    "success",
				Reference:     "ref-1",
				Amount:        decimal.NewFromInt(1000),
				PaidAt:        time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC),
			},
		},
		{
			name: "charge failed",
			body: `{"event":"charge.failed","data":{"reference":"ref-1","status":"failed","gateway_response":"Declined"}}`,
			want: entities.PaymentEvent{
				CorrelationID: "ref-1",
				ResultCode:    "failed",
				Reason:        "Declined",
				Reference:     "ref-1",
			},
		},
		{
			name:    "not json",
			body:    `event=charge.success`,
			wantErr: entities.ErrInvalidPayload,
		},
		{
			name:    "missing reference",
			body:    `{"event":"charge.success","data":{"status":"success"}}`,
			wantErr: entities.ErrInvalidPayload,
		},
		{
			name:    "not final",
			body:    `{"event":"charge.pending","data":{"reference":"ref-1","status":"pending"}}`,
			wantErr: entities.ErrInvalidPayload,
		},
		{
			name:    "bad paid_at",
			body:    `{"event":"charge.success","data":{"reference":"ref-1","status":"success","paid_at":"yesterday"}}`,
			wantErr: entities.ErrInvalidPayload,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ev, err := c.ParseEvent([]byte(tc.body))
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.want.Amount.Equal(ev.Amount))
			ev.Amount = tc.want.Amount
			assert.Equal(t, tc.want, ev)
		})
	}
}

func TestClient_VerifySignature(t *testing.T) {
	c := New(slog.New(slog.NewTextHandler(io.Discard, nil)), Config{WebhookSecret: "whsec"}, http.DefaultClient)
	body := []byte(`{"event":"charge.success"}`)

	assert.NoError(t, c.VerifySignature(body, c.Sign(body)))
	assert.ErrorIs(t, c.VerifySignature(body, ""), entities.ErrInvalidSignature)
}
