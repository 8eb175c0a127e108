package repo

import (
	"context"
	"fmt"

	"github.com/SergeyBogomolovv/storefront/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

var cartColumns = []string{
	"id", "session_id", "product_id", "variation_id", "name", "size", "unit_price", "quantity", "created_at",
}

func (r *postgresRepo) ListItems(ctx context.Context, sessionID string) ([]entities.CartItem, error) {
	query, args := r.qb.Select(cartColumns...).
		From("cart_items").
		Where(sq.Eq{"session_id": sessionID}).
		OrderBy("id").
		MustSql()

	var items []CartItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select cart items: %w", err)
	}

	result := make([]entities.CartItem, 0, len(items))
	for _, it := range items {
		result = append(result, CartItemToEntity(it))
	}
	return result, nil
}

// AddItem при повторном добавлении той же позиции увеличивает количество, цена не меняется.
func (r *postgresRepo) AddItem(ctx context.Context, item entities.CartItem) (entities.CartItem, error) {
	query, args := r.qb.Insert("cart_items").
		Columns("session_id", "product_id", "variation_id", "name", "size", "unit_price", "quantity").
		Values(item.SessionID, item.ProductID, item.VariationID, item.Name, item.Size, item.UnitPrice, item.Quantity).
		Suffix("ON CONFLICT (session_id, product_id, variation_id) DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity").
		Suffix("RETURNING id, session_id, product_id, variation_id, name, size, unit_price, quantity, created_at").
		MustSql()

	var saved CartItem
	err := r.getContext(ctx, &saved, query, args...)
	if isForeignKeyViolation(err) {
		return entities.CartItem{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.CartItem{}, fmt.Errorf("failed to add cart item: %w", err)
	}
	return CartItemToEntity(saved), nil
}

func (r *postgresRepo) UpdateQuantity(ctx context.Context, sessionID string, itemID int64, quantity int) error {
	query, args := r.qb.Update("cart_items").
		Set("quantity", quantity).
		Where(sq.Eq{"id": itemID, "session_id": sessionID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if isCheckViolation(err) {
		return entities.ErrInvalidInput
	}
	if err != nil {
		return fmt.Errorf("failed to update cart item: %w", err)
	}
	return expectAffected(res, entities.ErrCartItemNotFound)
}

func (r *postgresRepo) RemoveItem(ctx context.Context, sessionID string, itemID int64) error {
	query, args := r.qb.Delete("cart_items").
		Where(sq.Eq{"id": itemID, "session_id": sessionID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	return expectAffected(res, entities.ErrCartItemNotFound)
}

func (r *postgresRepo) ClearCart(ctx context.Context, sessionID string) (int64, error) {
	query, args := r.qb.Delete("cart_items").
		Where(sq.Eq{"session_id": sessionID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to clear cart: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return n, nil
}
