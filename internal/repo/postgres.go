package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/storefront/internal/entities"
	"github.com/SergeyBogomolovv/storefront/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var orderColumns = []string{
	"id", "session_id",
	"first_name", "last_name", "email", "phone", "address", "town",
	"delivery_cost", "discount_code", "discount_percentage", "total_price",
	"status", "provider", "correlation_id", "payment_reference", "failure_reason", "paid_at",
	"created_at", "updated_at",
}

var orderItemColumns = []string{
	"id", "order_id", "product_id", "variation_id", "name", "size", "unit_price", "quantity",
}

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) LatestOrders(ctx context.Context, limit int) ([]entities.Order, error) {
	// Получаем последние заказы в финальном статусе
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"status": []string{entities.StatusPaid.String(), entities.StatusFailed.String()}}).
		OrderBy("updated_at DESC").
		Limit(uint64(limit)).
		MustSql()

	var orders []Order
	err := r.selectContext(ctx, &orders, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
	}

	// Получаем позиции этих заказов
	query, args = r.qb.Select(orderItemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("id").
		MustSql()

	var items []OrderItem
	err = r.selectContext(ctx, &items, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}
	itemsMap := make(map[string][]OrderItem, len(ids))
	for _, item := range items {
		itemsMap[item.OrderID] = append(itemsMap[item.OrderID], item)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, OrderToEntity(order, itemsMap[order.ID]))
	}

	return result, nil
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	return r.getOrder(ctx, sq.Eq{"id": orderID})
}

func (r *postgresRepo) GetOrderByCorrelationID(ctx context.Context, correlationID string) (entities.Order, error) {
	if correlationID == "" {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return r.getOrder(ctx, sq.Eq{"correlation_id": correlationID})
}

func (r *postgresRepo) getOrder(ctx context.Context, where sq.Eq) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(where).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) || isInvalidUUID(err) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select(orderItemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": order.ID}).
		OrderBy("id").
		MustSql()

	var items []OrderItem
	err = r.selectContext(ctx, &items, query, args...)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get items: %w", err)
	}

	return OrderToEntity(order, items), nil
}

func (r *postgresRepo) SaveOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(
			"id", "session_id",
			"first_name", "last_name", "email", "phone", "address", "town",
			"delivery_cost", "discount_code", "discount_percentage", "total_price",
			"status", "created_at", "updated_at",
		).
		Values(
			o.ID, o.SessionID,
			o.Customer.FirstName, o.Customer.LastName, o.Customer.Email, o.Customer.Phone, o.Customer.Address, o.Customer.Town,
			o.DeliveryCost, nullString(o.DiscountCode), o.DiscountPercentage, o.TotalPrice,
			o.Status.String(), o.CreatedAt, o.UpdatedAt,
		).
		MustSql()

	_, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

func (r *postgresRepo) SaveItems(ctx context.Context, orderID string, items []entities.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_id", "product_id", "variation_id", "name", "size", "unit_price", "quantity")

	for _, it := range items {
		q = q.Values(orderID, it.ProductID, it.VariationID, it.Name, it.Size, it.UnitPrice, it.Quantity)
	}

	query, args := q.MustSql()
	_, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save items: %w", err)
	}
	return nil
}

// UpdateStatus меняет статус, только если текущий статус равен from.
// Если ни одна строка не обновлена, возвращает entities.ErrStatusConflict.
func (r *postgresRepo) UpdateStatus(ctx context.Context, orderID string, from entities.OrderStatus, upd entities.StatusUpdate) error {
	set := map[string]any{
		"status":     upd.Status.String(),
		"updated_at": sq.Expr("now()"),
	}
	if upd.Provider != "" {
		set["provider"] = string(upd.Provider)
	}
	if upd.CorrelationID != "" {
		set["correlation_id"] = upd.CorrelationID
	}
	if upd.PaymentReference != "" {
		set["payment_reference"] = upd.PaymentReference
	}
	if upd.FailureReason != "" {
		set["failure_reason"] = upd.FailureReason
	}
	if !upd.PaidAt.IsZero() {
		set["paid_at"] = upd.PaidAt.UTC()
	}

	query, args := r.qb.Update("orders").
		SetMap(set).
		Where(sq.Eq{"id": orderID, "status": from.String()}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if n == 0 {
		return entities.ErrStatusConflict
	}
	return nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		res, err := tx.ExecContext(ctx, query, args...)
		return res, classify(err)
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	return res, classify(err)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return classify(tx.GetContext(ctx, dest, query, args...))
	}
	return classify(r.db.GetContext(ctx, dest, query, args...))
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return classify(tx.SelectContext(ctx, dest, query, args...))
	}
	return classify(r.db.SelectContext(ctx, dest, query, args...))
}

func expectAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
