package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront/internal/entities"
	"github.com/SergeyBogomolovv/storefront/internal/service"
	mocks "github.com/SergeyBogomolovv/storefront/internal/service/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingOrder() entities.Order {
	o := awaitingOrder()
	o.Status = entities.StatusPending
	o.Provider = ""
	o.CorrelationID = ""
	o.Customer.Phone = "0712345678"
	return o
}

func TestPaymentService_InitiatePayment(t *testing.T) {
	type MockBehavior func(gw *mocks.MockPaymentGateway)

	testCases := []struct {
		name         string
		order        entities.Order
		req          service.PaymentRequest
		mockBehavior MockBehavior
		wantErr      error
		wantStatus   entities.OrderStatus
	}{
		{
			name:  "accepted",
			order: pendingOrder(),
			req:   service.PaymentRequest{OrderID: "order-1", Provider: entities.ProviderMpesa},
			mockBehavior: func(gw *mocks.MockPaymentGateway) {
				gw.EXPECT().Charge(mock.Anything, entities.ChargeRequest{
					OrderID: "order-1",
					Amount:  decimal.NewFromInt(990),
					Phone:   "0712345678",
					Email:   "jane@example.com",
				}).Return(entities.ChargeResult{CorrelationID: "ws_CO_1"}, nil).Once()
			},
			wantStatus: entities.StatusAwaitingPayment,
		},
		{
			name:  "phone from request wins",
			order: pendingOrder(),
			req:   service.PaymentRequest{OrderID: "order-1", Provider: entities.ProviderMpesa, Phone: "0799999999"},
			mockBehavior: func(gw *mocks.MockPaymentGateway) {
				gw.EXPECT().Charge(mock.Anything, mock.MatchedBy(func(r entities.ChargeRequest) bool {
					return r.Phone == "0799999999"
				})).Return(entities.ChargeResult{CorrelationID: "ws_CO_1"}, nil).Once()
			},
			wantStatus: entities.StatusAwaitingPayment,
		},
		{
			name:  "provider rejects",
			order: pendingOrder(),
			req:   service.PaymentRequest{OrderID: "order-1", Provider: entities.ProviderMpesa},
			mockBehavior: func(gw *mocks.MockPaymentGateway) {
				gw.EXPECT().Charge(mock.Anything, mock.Anything).
					Return(entities.ChargeResult{}, errors.New("stk push rejected")).Once()
			},
			wantErr:    &entities.UpstreamError{},
			wantStatus: entities.StatusPending,
		},
		{
			name:  "bad phone",
			order: pendingOrder(),
			req:   service.PaymentRequest{OrderID: "order-1", Provider: entities.ProviderMpesa},
			mockBehavior: func(gw *mocks.MockPaymentGateway) {
				gw.EXPECT().Charge(mock.Anything, mock.Anything).
					Return(entities.ChargeResult{}, entities.ErrInvalidInput).Once()
			},
			wantErr:    entities.ErrInvalidInput,
			wantStatus: entities.StatusPending,
		},
		{
			name:       "already awaiting payment",
			order:      awaitingOrder(),
			req:        service.PaymentRequest{OrderID: "order-1", Provider: entities.ProviderMpesa},
			wantErr:    entities.ErrInvalidStateTransition,
			wantStatus: entities.StatusAwaitingPayment,
		},
		{
			name:       "unknown provider",
			order:      pendingOrder(),
			req:        service.PaymentRequest{OrderID: "order-1", Provider: "paypal"},
			wantErr:    entities.ErrUnknownProvider,
			wantStatus: entities.StatusPending,
		},
		{
			name:       "order not found",
			order:      pendingOrder(),
			req:        service.PaymentRequest{OrderID: "missing", Provider: entities.ProviderMpesa},
			wantErr:    entities.ErrOrderNotFound,
			wantStatus: entities.StatusPending,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := newMemStore(tc.order)
			gw := newGateway(t, entities.ProviderMpesa)
			if tc.mockBehavior != nil {
				tc.mockBehavior(gw)
			}

			svc := service.NewPaymentService(newLogger(), store, service.NewGateways(gw), time.Second)
			res, err := svc.InitiatePayment(context.Background(), tc.req)

			stored := store.order(tc.order.ID)
			assert.Equal(t, tc.wantStatus, stored.Status)

			if tc.wantErr != nil {
				var upstream *entities.UpstreamError
				if errors.As(tc.wantErr, &upstream) {
					require.ErrorAs(t, err, &upstream)
					assert.True(t, upstream.Retryable)
					assert.Equal(t, entities.ProviderMpesa, upstream.Provider)
				} else {
					assert.ErrorIs(t, err, tc.wantErr)
				}
				return
			}
			require.NoError(t, err)

			assert.Equal(t, "ws_CO_1", res.CorrelationID)
			assert.Equal(t, entities.StatusAwaitingPayment, res.Order.Status)
			assert.Equal(t, "ws_CO_1", stored.CorrelationID)
			assert.Equal(t, entities.ProviderMpesa, stored.Provider)
		})
	}
}

func TestPaymentService_ChargeIsNotRetried(t *testing.T) {
	store := newMemStore(pendingOrder())
	gw := newGateway(t, entities.ProviderHosted)
	gw.EXPECT().Charge(mock.Anything, mock.Anything).
		Return(entities.ChargeResult{}, context.DeadlineExceeded).Once()

	svc := service.NewPaymentService(newLogger(), store, service.NewGateways(gw), time.Second)
	_, err := svc.InitiatePayment(context.Background(), service.PaymentRequest{OrderID: "order-1", Provider: entities.ProviderHosted})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	gw.AssertNumberOfCalls(t, "Charge", 1)
}

func TestPaymentService_ChargeHasDeadline(t *testing.T) {
	store := newMemStore(pendingOrder())
	gw := newGateway(t, entities.ProviderHosted)
	gw.EXPECT().Charge(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ entities.ChargeRequest) (entities.ChargeResult, error) {
			_, ok := ctx.Deadline()
			assert.True(t, ok)
			return entities.ChargeResult{CorrelationID: "ref-1", RedirectURL: "https://pay.example.com/ref-1"}, nil
		})

	svc := service.NewPaymentService(newLogger(), store, service.NewGateways(gw), 50*time.Millisecond)
	res, err := svc.InitiatePayment(context.Background(), service.PaymentRequest{OrderID: "order-1", Provider: entities.ProviderHosted})
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/ref-1", res.RedirectURL)
}
