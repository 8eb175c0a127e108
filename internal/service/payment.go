package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/storefront/internal/entities"
	"github.com/shopspring/decimal"
)

type PaymentGateway interface {
	Name() entities.Provider
	Charge(ctx context.Context, req entities.ChargeRequest) (entities.ChargeResult, error)
	Query(ctx context.Context, correlationID string) (entities.PaymentEvent, error)
	VerifySignature(body []byte, signature string) error
	ParseEvent(body []byte) (entities.PaymentEvent, error)
}

type Gateways map[entities.Provider]PaymentGateway

func NewGateways(gateways ...PaymentGateway) Gateways {
	g := make(Gateways, len(gateways))
	for _, gw := range gateways {
		g[gw.Name()] = gw
	}
	return g
}

func (g Gateways) Get(provider entities.Provider) (PaymentGateway, error) {
	gw, ok := g[provider]
	if !ok {
		return nil, fmt.Errorf("%w: %q", entities.ErrUnknownProvider, provider)
	}
	return gw, nil
}

type PaymentRequest struct {
	OrderID  string
	Provider entities.Provider
	// Phone и Email по умолчанию берутся из заказа.
	Phone string
	Email string
}

type PaymentResult struct {
	Order         entities.Order
	CorrelationID string
	RedirectURL   string
	Message       string
}

type paymentService struct {
	logger   *slog.Logger
	orders   OrderRepo
	gateways Gateways
	timeout  time.Duration
}

func NewPaymentService(logger *slog.Logger, orders OrderRepo, gateways Gateways, timeout time.Duration) *paymentService {
	return &paymentService{
		logger:   logger.With(slog.String("service", "payment")),
		orders:   orders,
		gateways: gateways,
		timeout:  timeout,
	}
}

// InitiatePayment отправляет заказ провайдеру. Запрос к провайдеру не повторяется,
// при ошибке заказ остаётся в pending.
func (s *paymentService) InitiatePayment(ctx context.Context, req PaymentRequest) (PaymentResult, error) {
	gw, err := s.gateways.Get(req.Provider)
	if err != nil {
		return PaymentResult{}, err
	}

	order, err := s.orders.GetOrderByID(ctx, req.OrderID)
	if err != nil {
		return PaymentResult{}, fmt.Errorf("failed to get order: %w", err)
	}
	if order.Status != entities.StatusPending {
		return PaymentResult{}, fmt.Errorf("%w: order is %s", entities.ErrInvalidStateTransition, order.Status)
	}

	charge := entities.ChargeRequest{
		OrderID: order.ID,
		Amount:  order.TotalPrice,
		Phone:   firstNonEmpty(req.Phone, order.Customer.Phone),
		Email:   firstNonEmpty(req.Email, order.Customer.Email),
	}

	chargeCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	res, err := gw.Charge(chargeCtx, charge)
	if err != nil {
		if errors.Is(err, entities.ErrInvalidInput) {
			return PaymentResult{}, err
		}
		s.logger.WarnContext(ctx, "payment initiation failed",
			slog.String("order_id", order.ID),
			slog.String("provider", string(gw.Name())),
			slog.Any("error", err),
		)
		return PaymentResult{}, &entities.UpstreamError{Provider: gw.Name(), Op: "charge", Retryable: true, Err: err}
	}

	upd := entities.StatusUpdate{
		Status:        entities.StatusAwaitingPayment,
		Provider:      gw.Name(),
		CorrelationID: res.CorrelationID,
	}
	if err := transition(ctx, s.orders, order, upd); err != nil {
		// Провайдер уже принял запрос, но заказ успел измениться.
		s.logger.ErrorContext(ctx, "charge accepted for order that changed concurrently",
			slog.String("order_id", order.ID),
			slog.String("correlation_id", res.CorrelationID),
			slog.Any("error", err),
		)
		return PaymentResult{}, err
	}

	order.Status = entities.StatusAwaitingPayment
	order.Provider = gw.Name()
	order.CorrelationID = res.CorrelationID

	s.logger.InfoContext(ctx, "payment initiated",
		slog.String("order_id", order.ID),
		slog.String("provider", string(gw.Name())),
		slog.String("correlation_id", res.CorrelationID),
	)

	return PaymentResult{
		Order:         order,
		CorrelationID: res.CorrelationID,
		RedirectURL:   res.RedirectURL,
		Message:       res.Message,
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// chargedAmount - сумма, запрошенная у провайдера. M-Pesa принимает только целые шиллинги.
func chargedAmount(o entities.Order) decimal.Decimal {
	if o.Provider == entities.ProviderMpesa {
		return o.TotalPrice.Ceil()
	}
	return o.TotalPrice.Round(2)
}
