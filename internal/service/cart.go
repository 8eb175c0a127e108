package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/storefront/internal/entities"
	"github.com/SergeyBogomolovv/storefront/internal/pricing"
)

type ProductRepo interface {
	GetProduct(ctx context.Context, productID int64) (entities.Product, error)
}

type CartRepo interface {
	ListItems(ctx context.Context, sessionID string) ([]entities.CartItem, error)
	// AddItem увеличивает количество, если позиция уже есть в корзине. Цена остаётся первой захваченной.
	AddItem(ctx context.Context, item entities.CartItem) (entities.CartItem, error)
	UpdateQuantity(ctx context.Context, sessionID string, itemID int64, quantity int) error
	RemoveItem(ctx context.Context, sessionID string, itemID int64) error
}

type cartService struct {
	logger   *slog.Logger
	products ProductRepo
	carts    CartRepo
	now      func() time.Time
}

func NewCartService(logger *slog.Logger, products ProductRepo, carts CartRepo) *cartService {
	return &cartService{
		logger:   logger.With(slog.String("service", "cart")),
		products: products,
		carts:    carts,
		now:      time.Now,
	}
}

// AddItem фиксирует цену товара на момент добавления в корзину.
func (s *cartService) AddItem(ctx context.Context, sessionID string, productID, variationID int64, quantity int) (entities.CartItem, error) {
	if sessionID == "" || quantity <= 0 {
		return entities.CartItem{}, fmt.Errorf("%w: quantity must be positive", entities.ErrInvalidInput)
	}

	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return entities.CartItem{}, fmt.Errorf("failed to get product: %w", err)
	}

	now := s.now()
	price, err := pricing.Resolve(product, variationID, now)
	if err != nil {
		return entities.CartItem{}, err
	}
	variation, err := pricing.SelectVariation(product, variationID, now)
	if err != nil {
		return entities.CartItem{}, err
	}

	item, err := s.carts.AddItem(ctx, entities.CartItem{
		SessionID:   sessionID,
		ProductID:   product.ID,
		VariationID: variation.ID,
		Name:        product.Name,
		Size:        variation.Size,
		UnitPrice:   price,
		Quantity:    quantity,
	})
	if err != nil {
		return entities.CartItem{}, fmt.Errorf("failed to add cart item: %w", err)
	}

	s.logger.DebugContext(ctx, "item added to cart",
		slog.Int64("product_id", product.ID),
		slog.String("unit_price", price.StringFixed(2)),
	)
	return item, nil
}

func (s *cartService) ListItems(ctx context.Context, sessionID string) ([]entities.CartItem, error) {
	items, err := s.carts.ListItems(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}
	return items, nil
}

func (s *cartService) UpdateQuantity(ctx context.Context, sessionID string, itemID int64, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", entities.ErrInvalidInput)
	}
	if err := s.carts.UpdateQuantity(ctx, sessionID, itemID, quantity); err != nil {
		return fmt.Errorf("failed to update cart item: %w", err)
	}
	return nil
}

func (s *cartService) RemoveItem(ctx context.Context, sessionID string, itemID int64) error {
	if err := s.carts.RemoveItem(ctx, sessionID, itemID); err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	return nil
}
