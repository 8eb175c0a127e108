package mpesa

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront/internal/entities"
	"github.com/SergeyBogomolovv/storefront/internal/gateway"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type darajaStub struct {
	tokenCalls atomic.Int32
	push       func(w http.ResponseWriter, req stkPushRequest)
	query      func(w http.ResponseWriter, req stkQueryRequest)
}

func (s *darajaStub) handler(t *testing.T) http.Handler {
	r := chi.NewRouter()
	r.Get("/oauth/v1/generate", func(w http.ResponseWriter, r *http.Request) {
		s.tokenCalls.Add(1)
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "key", user)
		assert.Equal(t, "secret", pass)
		time.Sleep(20 * time.Millisecond)
		writeJSON(w, http.StatusOK, tokenResponse{AccessToken: "token", ExpiresIn: "3599"})
	})
	r.Post("/mpesa/stkpush/v1/processrequest", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
		var req stkPushRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		s.push(w, req)
	})
	r.Post("/mpesa/stkpushquery/v1/query", func(w http.ResponseWriter, r *http.Request) {
		var req stkQueryRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		s.query(w, req)
	})
	return r
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func newTestClient(t *testing.T, stub *darajaStub) *Client {
	srv := httptest.NewServer(stub.handler(t))
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := New(logger, Config{
		BaseURL:          srv.URL,
		ConsumerKey:      "key",
		ConsumerSecret:   "secret",
		ShortCode:        "174379",
		Passkey:          "passkey",
		CallbackURL:      "https://shop.example.com/webhook/mpesa",
		CallbackSecret:   "callback-secret",
		AccountReference: "Vitapharm",
	}, srv.Client())
	c.now = func() time.Time { return time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC) }
	return c
}

func TestClient_Charge(t *testing.T) {
	testCases := []struct {
		name    string
		phone   string
		push    func(w http.ResponseWriter, req stkPushRequest)
		want    entities.ChargeResult
		wantErr bool
	}{
		{
			name:  "accepted",
			phone: "0712 345 678",
			push: func(w http.ResponseWriter, req stkPushRequest) {
				writeJSON(w, http.StatusOK, stkPushResponse{
					CheckoutRequestID: "ws_CO_1",
					ResponseCode:      "0",
					CustomerMessage:   "Success. Request accepted for processing",
				})
			},
			want: entities.ChargeResult{CorrelationID: "ws_CO_1", Message: "Success. Request accepted for processing"},
		},
		{
			name:  "rejected by response code",
			phone: "254712345678",
			push: func(w http.ResponseWriter, req stkPushRequest) {
				writeJSON(w, http.StatusOK, stkPushResponse{ResponseCode: "1", ResponseDescription: "rejected"})
			},
			wantErr: true,
		},
		{
			name:  "daraja error payload",
			phone: "254712345678",
			push: func(w http.ResponseWriter, req stkPushRequest) {
				writeJSON(w, http.StatusBadRequest, errorResponse{ErrorCode: "400.002.02", ErrorMessage: "Bad Request - Invalid Amount"})
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &darajaStub{push: tc.push}
			c := newTestClient(t, stub)

			got, err := c.Charge(context.Background(), entities.ChargeRequest{
				OrderID: "order-1",
				Amount:  decimal.RequireFromString("990.40"),
				Phone:   tc.phone,
			})
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestClient_ChargeRequestBody(t *testing.T) {
	var got stkPushRequest
	stub := &darajaStub{push: func(w http.ResponseWriter, req stkPushRequest) {
		got = req
		writeJSON(w, http.StatusOK, stkPushResponse{CheckoutRequestID: "ws_CO_1", ResponseCode: "0"})
	}}
	c := newTestClient(t, stub)

	_, err := c.Charge(context.Background(), entities.ChargeRequest{
		OrderID: "order-1",
		Amount:  decimal.RequireFromString("990.40"),
		Phone:   "0712345678",
	})
	require.NoError(t, err)

	// 09:30 UTC == 12:30 EAT
	assert.Equal(t, "20250615123000", got.Timestamp)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("174379passkey20250615123000")), got.Password)
	assert.Equal(t, int64(991), got.Amount)
	assert.Equal(t, "254712345678", got.PhoneNumber)
	assert.Equal(t, "CustomerPayBillOnline", got.TransactionType)

	callback, err := url.Parse(got.CallBackURL)
	require.NoError(t, err)
	assert.Equal(t, "/webhook/mpesa", callback.Path)
	token := callback.Query().Get(gateway.CallbackTokenParam)
	assert.NotEmpty(t, token)
	assert.NoError(t, c.VerifySignature([]byte(`{"Body":{}}`), token))
}

func TestClient_VerifySignature(t *testing.T) {
	c := newTestClient(t, &darajaStub{})
	body := []byte(`{"Body":{"stkCallback":{}}}`)

	testCases := []struct {
		name      string
		signature string
		wantErr   bool
	}{
		{name: "signed body", signature: c.Sign(body)},
		{name: "callback token", signature: c.CallbackToken()},
		{name: "missing", signature: "", wantErr: true},
		{name: "token of another secret", signature: gateway.NewSigner("other").CallbackToken(), wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := c.VerifySignature(body, tc.signature)
			if tc.wantErr {
				assert.ErrorIs(t, err, entities.ErrInvalidSignature)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestClient_TokenIsSharedBetweenConcurrentCalls(t *testing.T) {
	stub := &darajaStub{push: func(w http.ResponseWriter, req stkPushRequest) {
		writeJSON(w, http.StatusOK, stkPushResponse{CheckoutRequestID: "ws_CO_1", ResponseCode: "0"})
	}}
	c := newTestClient(t, stub)

	var wg sync.WaitGroup
	for range 5 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.Charge(context.Background(), entities.ChargeRequest{OrderID: "o", Amount: decimal.NewFromInt(1), Phone: "0712345678"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	_, err := c.Charge(context.Background(), entities.ChargeRequest{OrderID: "o", Amount: decimal.NewFromInt(1), Phone: "0712345678"})
	require.NoError(t, err)

	assert.Equal(t, int32(1), stub.tokenCalls.Load())
}

func TestClient_Query(t *testing.T) {
	testCases := []struct {
		name    string
		query   func(w http.ResponseWriter, req stkQueryRequest)
		check   func(t *testing.T, ev entities.PaymentEvent)
		wantErr bool
	}{
		{
			name: "paid",
			query: func(w http.ResponseWriter, req stkQueryRequest) {
				writeJSON(w, http.StatusOK, stkQueryResponse{ResponseCode: "0", ResultCode: "0", ResultDesc: "The service request is processed successfully."})
			},
			check: func(t *testing.T, ev entities.PaymentEvent) {
				assert.True(t, ev.Success)
				assert.False(t, ev.Pending)
				assert.False(t, ev.PaidAt.IsZero())
			},
		},
		{
			name: "cancelled by user",
			query: func(w http.ResponseWriter, req stkQueryRequest) {
				writeJSON(w, http.StatusOK, stkQueryResponse{ResponseCode: "0", ResultCode: "1032", ResultDesc: "Request cancelled by user"})
			},
			check: func(t *testing.T, ev entities.PaymentEvent) {
				assert.False(t, ev.Success)
				assert.False(t, ev.Pending)
				assert.Equal(t, "1032", ev.ResultCode)
				assert.Equal(t, "Request cancelled by user", ev.Reason)
			},
		},
		{
			name: "still processing",
			query: func(w http.ResponseWriter, req stkQueryRequest) {
				writeJSON(w, http.StatusInternalServerError, errorResponse{ErrorCode: queryPendingCode, ErrorMessage: "The transaction is being processed"})
			},
			check: func(t *testing.T, ev entities.PaymentEvent) {
				assert.True(t, ev.Pending)
				assert.False(t, ev.Success)
			},
		},
		{
			name: "provider failure",
			query: func(w http.ResponseWriter, req stkQueryRequest) {
				w.WriteHeader(http.StatusBadGateway)
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &darajaStub{query: func(w http.ResponseWriter, req stkQueryRequest) {
				assert.Equal(t, "ws_CO_1", req.CheckoutRequestID)
				tc.query(w, req)
			}}
			c := newTestClient(t, stub)

			ev, err := c.Query(context.Background(), "ws_CO_1")
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "ws_CO_1", ev.CorrelationID)
			tc.check(t, ev)
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	testCases := []struct {
		phone   string
		want    string
		wantErr bool
	}{
		{phone: "0712345678", want: "254712345678"},
		{phone: "+254 712 345 678", want: "254712345678"},
		{phone: "712345678", want: "254712345678"},
		{phone: "0112345678", want: "254112345678"},
		{phone: "254712345678", want: "254712345678"},
		{phone: "12345", wantErr: true},
		{phone: "25471234567a", wantErr: true},
		{phone: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.phone, func(t *testing.T) {
			got, err := NormalizePhone(tc.phone)
			if tc.wantErr {
				assert.ErrorIs(t, err, entities.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
