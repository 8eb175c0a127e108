package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/SergeyBogomolovv/storefront/internal/entities"
	"github.com/SergeyBogomolovv/storefront/pkg/trm"
	"github.com/SergeyBogomolovv/storefront/pkg/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type NotificationRepo interface {
	// EnqueueNotification возвращает false, если уведомление такого вида для заказа уже есть.
	EnqueueNotification(ctx context.Context, n entities.Notification) (bool, error)
}

type confirmationService struct {
	logger        *slog.Logger
	txManager     trm.Manager
	orders        OrderRepo
	notifications NotificationRepo
	gateways      Gateways
	timeout       time.Duration
	freshness     time.Duration
	now           func() time.Time
	newID         func() string
}

func NewConfirmationService(
	logger *slog.Logger,
	txManager trm.Manager,
	orders OrderRepo,
	notifications NotificationRepo,
	gateways Gateways,
	timeout time.Duration,
	freshness time.Duration,
) *confirmationService {
	return &confirmationService{
		logger:        logger.With(slog.String("service", "confirmation")),
		txManager:     txManager,
		orders:        orders,
		notifications: notifications,
		gateways:      gateways,
		timeout:       timeout,
		freshness:     freshness,
		now:           time.Now,
		newID:         uuid.NewString,
	}
}

// HandleWebhook обрабатывает уведомление провайдера. Тело разбирается только после проверки подписи.
func (s *confirmationService) HandleWebhook(ctx context.Context, provider entities.Provider, signature string, body []byte) (entities.Confirmation, error) {
	gw, err := s.gateways.Get(provider)
	if err != nil {
		return entities.Confirmation{}, err
	}
	if err := gw.VerifySignature(body, signature); err != nil {
		return entities.Confirmation{}, err
	}

	ev, err := gw.ParseEvent(body)
	if err != nil {
		return entities.Confirmation{}, err
	}

	order, err := s.orders.GetOrderByCorrelationID(ctx, ev.CorrelationID)
	if err != nil {
		return entities.Confirmation{}, fmt.Errorf("failed to get order by correlation id: %w", err)
	}
	if order.Provider != provider {
		return entities.Confirmation{}, fmt.Errorf("%w: correlation id belongs to %s", entities.ErrOrderNotFound, order.Provider)
	}

	log := s.logger.With(slog.String("order_id", order.ID), slog.String("correlation_id", ev.CorrelationID))

	if order.Status.IsTerminal() {
		log.InfoContext(ctx, "duplicate payment event ignored", slog.String("status", order.Status.String()))
		return entities.Confirmation{OrderID: order.ID, Status: order.Status}, nil
	}

	if err := s.checkFreshness(ev); err != nil {
		log.WarnContext(ctx, "payment event rejected", slog.Any("error", err))
		return entities.Confirmation{}, err
	}

	return s.apply(ctx, order.ID, ev, entities.StatusAwaitingPayment)
}

// VerifyPayment запрашивает статус платежа у провайдера.
func (s *confirmationService) VerifyPayment(ctx context.Context, orderID, reference string) (entities.Confirmation, error) {
	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.Confirmation{}, fmt.Errorf("failed to get order: %w", err)
	}
	if order.Status.IsTerminal() {
		return entities.Confirmation{OrderID: order.ID, Status: order.Status}, nil
	}
	if order.Status != entities.StatusAwaitingPayment {
		return entities.Confirmation{}, fmt.Errorf("%w: payment for order %s was not initiated", entities.ErrInvalidStateTransition, order.ID)
	}
	if reference != "" && reference != order.CorrelationID {
		return entities.Confirmation{}, entities.ErrReferenceMismatch
	}

	gw, err := s.gateways.Get(order.Provider)
	if err != nil {
		return entities.Confirmation{}, err
	}

	queryCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	ev, err := gw.Query(queryCtx, order.CorrelationID)
	if err != nil {
		return entities.Confirmation{}, &entities.UpstreamError{Provider: gw.Name(), Op: "query", Retryable: true, Err: err}
	}
	if ev.Pending {
		return entities.Confirmation{OrderID: order.ID, Status: order.Status, Pending: true, Reason: ev.Reason}, nil
	}
	if ev.Success && ev.PaidAt.IsZero() {
		ev.PaidAt = s.now().UTC()
	}

	return s.apply(ctx, order.ID, ev, entities.StatusAwaitingPayment)
}

// ConfirmManually помечает заказ оплаченным по решению администратора.
func (s *confirmationService) ConfirmManually(ctx context.Context, orderID, reference string) (entities.Confirmation, error) {
	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.Confirmation{}, fmt.Errorf("failed to get order: %w", err)
	}
	if order.Status == entities.StatusFailed {
		return entities.Confirmation{}, fmt.Errorf("%w: order %s has failed", entities.ErrInvalidStateTransition, order.ID)
	}

	ev := entities.PaymentEvent{
		CorrelationID: order.CorrelationID,
		Success:       true,
		Reason:        "confirmed manually",
		Reference:     reference,
		PaidAt:        s.now().UTC(),
	}
	return s.apply(ctx, order.ID, ev, entities.StatusPending, entities.StatusAwaitingPayment)
}

func (s *confirmationService) checkFreshness(ev entities.PaymentEvent) error {
	if ev.PaidAt.IsZero() {
		if ev.Success {
			return fmt.Errorf("%w: payment timestamp is missing", entities.ErrInvalidPayload)
		}
		return nil
	}

	age := s.now().Sub(ev.PaidAt)
	if age < 0 {
		age = -age
	}
	if age > s.freshness {
		return fmt.Errorf("%w: paid at %s", entities.ErrStalePayment, ev.PaidAt.UTC().Format(time.RFC3339))
	}
	return nil
}

// apply переводит заказ в paid или failed. Переход и постановка уведомления в outbox
// выполняются в одной транзакции. Проигравший условное обновление получает Applied=false.
func (s *confirmationService) apply(ctx context.Context, orderID string, ev entities.PaymentEvent, from ...entities.OrderStatus) (entities.Confirmation, error) {
	var result entities.Confirmation
	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			order, err := s.orders.GetOrderByID(ctx, orderID)
			if err != nil {
				return fmt.Errorf("failed to get order: %w", err)
			}
			if order.Status.IsTerminal() {
				result = entities.Confirmation{OrderID: order.ID, Status: order.Status}
				return nil
			}
			if !slices.Contains(from, order.Status) {
				return fmt.Errorf("%w: order is %s", entities.ErrInvalidStateTransition, order.Status)
			}

			upd := statusUpdate(ev)
			if upd.Status == entities.StatusPaid && underpaid(order, ev.Amount) {
				upd = entities.StatusUpdate{
					Status:        entities.StatusFailed,
					FailureReason: fmt.Sprintf("amount mismatch: paid %s, expected %s", ev.Amount.String(), chargedAmount(order).String()),
				}
				s.logger.WarnContext(ctx, "payment amount does not cover order", slog.String("order_id", order.ID), slog.String("reason", upd.FailureReason))
			}
			if err := transition(ctx, s.orders, order, upd); err != nil {
				return err
			}

			if upd.Status == entities.StatusPaid {
				order.Status = upd.Status
				order.PaymentReference = upd.PaymentReference
				order.PaidAt = upd.PaidAt
				if err := s.enqueueConfirmation(ctx, order); err != nil {
					return err
				}
			}

			result = entities.Confirmation{OrderID: order.ID, Status: upd.Status, Applied: true, Reason: upd.FailureReason}
			return nil
		})
	}

	err := utils.Retry(dbRetry, fn,
		entities.ErrStatusConflict,
		entities.ErrInvalidStateTransition,
		entities.ErrOrderNotFound,
		entities.ErrDataRejected,
	)
	if errors.Is(err, entities.ErrStatusConflict) {
		return s.current(ctx, orderID)
	}
	if err != nil {
		return entities.Confirmation{}, err
	}

	if result.Applied {
		s.logger.InfoContext(ctx, "payment confirmation applied",
			slog.String("order_id", orderID),
			slog.String("status", result.Status.String()),
			slog.String("reference", ev.Reference),
		)
	}
	return result, nil
}

// current возвращает статус заказа после проигранной гонки за переход.
func (s *confirmationService) current(ctx context.Context, orderID string) (entities.Confirmation, error) {
	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.Confirmation{}, fmt.Errorf("failed to get order: %w", err)
	}
	s.logger.InfoContext(ctx, "payment confirmation lost the race", slog.String("order_id", orderID), slog.String("status", order.Status.String()))
	return entities.Confirmation{OrderID: order.ID, Status: order.Status}, nil
}

func (s *confirmationService) enqueueConfirmation(ctx context.Context, order entities.Order) error {
	payload, err := json.Marshal(entities.NewOrderConfirmation(order))
	if err != nil {
		return fmt.Errorf("failed to marshal confirmation: %w", err)
	}

	inserted, err := s.notifications.EnqueueNotification(ctx, entities.Notification{
		ID:        s.newID(),
		OrderID:   order.ID,
		Kind:      entities.NotificationOrderConfirmation,
		Payload:   payload,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to enqueue notification: %w", err)
	}
	if !inserted {
		s.logger.WarnContext(ctx, "order confirmation already scheduled", slog.String("order_id", order.ID))
	}
	return nil
}

// underpaid сравнивает сумму из события провайдера с суммой, запрошенной при оплате.
// Событие без суммы (ручное подтверждение) не проверяется.
func underpaid(order entities.Order, amount decimal.Decimal) bool {
	if amount.IsZero() {
		return false
	}
	return amount.LessThan(chargedAmount(order))
}

func statusUpdate(ev entities.PaymentEvent) entities.StatusUpdate {
	if ev.Success {
		return entities.StatusUpdate{
			Status:           entities.StatusPaid,
			PaymentReference: ev.Reference,
			PaidAt:           ev.PaidAt.UTC(),
		}
	}

	reason := ev.Reason
	if reason == "" {
		reason = "result code " + ev.ResultCode
	}
	return entities.StatusUpdate{
		Status:        entities.StatusFailed,
		FailureReason: reason,
	}
}
