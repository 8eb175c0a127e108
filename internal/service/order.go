package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/storefront/internal/entities"
	"github.com/SergeyBogomolovv/storefront/pkg/trm"
	"github.com/SergeyBogomolovv/storefront/pkg/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderRepo interface {
	// GetOrderByID возвращает заказ вместе с позициями.
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	GetOrderByCorrelationID(ctx context.Context, correlationID string) (entities.Order, error)
	// LatestOrders возвращает последние заказы в финальном статусе.
	LatestOrders(ctx context.Context, limit int) ([]entities.Order, error)

	SaveOrder(ctx context.Context, o entities.Order) error
	SaveItems(ctx context.Context, orderID string, items []entities.OrderItem) error
	// UpdateStatus применяется, только если текущий статус равен from.
	// Иначе возвращается entities.ErrStatusConflict.
	UpdateStatus(ctx context.Context, orderID string, from entities.OrderStatus, upd entities.StatusUpdate) error
}

type CheckoutCart interface {
	ListItems(ctx context.Context, sessionID string) ([]entities.CartItem, error)
	// ClearCart возвращает количество удалённых позиций.
	ClearCart(ctx context.Context, sessionID string) (int64, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

type PlaceOrderRequest struct {
	SessionID    string
	Customer     entities.Customer
	DeliveryCost decimal.Decimal
	DiscountCode string
}

const orderKeyPrefix = "order:"

var dbRetry = utils.RetryConfig{
	InitialDelay: 100 * time.Millisecond,
	MaxAttempts:  5,
	Multiplier:   2,
}

type orderService struct {
	logger     *slog.Logger
	txManager  trm.Manager
	repo       OrderRepo
	carts      CheckoutCart
	aggregator *Aggregator
	cache      Cache
	now        func() time.Time
	newID      func() string
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, repo OrderRepo, carts CheckoutCart, aggregator *Aggregator, cache Cache) *orderService {
	return &orderService{
		logger:     logger.With(slog.String("service", "order")),
		txManager:  txManager,
		repo:       repo,
		carts:      carts,
		aggregator: aggregator,
		cache:      cache,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// PlaceOrder создаёт заказ из корзины сессии. Заказ, его позиции и очистка корзины
// выполняются в одной транзакции.
func (s *orderService) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (entities.Order, error) {
	if req.SessionID == "" {
		return entities.Order{}, fmt.Errorf("%w: session is required", entities.ErrInvalidInput)
	}

	var order entities.Order
	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			items, err := s.carts.ListItems(ctx, req.SessionID)
			if err != nil {
				return fmt.Errorf("failed to list cart: %w", err)
			}

			totals, err := s.aggregator.Aggregate(ctx, items, req.DeliveryCost, req.DiscountCode)
			if err != nil {
				return err
			}

			now := s.now().UTC()
			order = entities.Order{
				ID:                 s.newID(),
				SessionID:          req.SessionID,
				Customer:           req.Customer,
				DeliveryCost:       totals.DeliveryCost,
				DiscountCode:       totals.DiscountCode,
				DiscountPercentage: totals.DiscountPercentage,
				TotalPrice:         totals.Total,
				Status:             entities.StatusPending,
				CreatedAt:          now,
				UpdatedAt:          now,
				Items:              totals.Lines,
			}

			if err := s.repo.SaveOrder(ctx, order); err != nil {
				return fmt.Errorf("failed to save order: %w", err)
			}
			if err := s.repo.SaveItems(ctx, order.ID, order.Items); err != nil {
				return fmt.Errorf("failed to save items: %w", err)
			}

			// Параллельный checkout той же корзины уже удалил позиции.
			removed, err := s.carts.ClearCart(ctx, req.SessionID)
			if err != nil {
				return fmt.Errorf("failed to clear cart: %w", err)
			}
			if removed != int64(len(items)) {
				return entities.ErrCartChanged
			}
			return nil
		})
	}

	err := utils.Retry(dbRetry, fn,
		entities.ErrEmptyCart,
		entities.ErrInvalidInput,
		entities.ErrDiscountInvalid,
		entities.ErrDataRejected,
	)
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.InfoContext(ctx, "order placed",
		slog.String("order_id", order.ID),
		slog.String("total", order.TotalPrice.StringFixed(2)),
		slog.Int("items", len(order.Items)),
	)
	return order, nil
}

// GetOrder кэширует только заказы в финальном статусе: они больше не меняются.
func (s *orderService) GetOrder(ctx context.Context, orderID string) (entities.Order, error) {
	if data, ok := s.cache.Get(orderKeyPrefix + orderID); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err != nil {
			s.logger.Error("failed to unmarshal order", slog.String("order_id", orderID), slog.Any("error", err))
			return entities.Order{}, err
		}
		return order, nil
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, orderID)
		return err
	}
	if err := utils.Retry(dbRetry, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	if order.Status.IsTerminal() {
		s.cacheOrder(order)
	}
	return order, nil
}

// WarmUpCache загружает в кэш последние завершённые заказы.
func (s *orderService) WarmUpCache(ctx context.Context, limit int) error {
	orders, err := s.repo.LatestOrders(ctx, limit)
	if err != nil {
		return fmt.Errorf("failed to get latest orders: %w", err)
	}
	for _, o := range orders {
		if o.Status.IsTerminal() {
			s.cacheOrder(o)
		}
	}
	s.logger.Info("order cache warmed up", slog.Int("orders", len(orders)))
	return nil
}

func (s *orderService) cacheOrder(order entities.Order) {
	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.String("order_id", order.ID), slog.Any("error", err))
		return
	}
	s.cache.Set(orderKeyPrefix+order.ID, data)
}

// transition проверяет допустимость перехода и выполняет условное обновление статуса.
func transition(ctx context.Context, repo OrderRepo, order entities.Order, upd entities.StatusUpdate) error {
	if !entities.CanTransition(order.Status, upd.Status) {
		return fmt.Errorf("%w: %s -> %s", entities.ErrInvalidStateTransition, order.Status, upd.Status)
	}
	if err := repo.UpdateStatus(ctx, order.ID, order.Status, upd); err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	return nil
}
