package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/storefront/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

// EnqueueNotification возвращает false, если уведомление этого вида для заказа уже записано.
func (r *postgresRepo) EnqueueNotification(ctx context.Context, n entities.Notification) (bool, error) {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}

	query, args := r.qb.Insert("notifications").
		Columns("id", "order_id", "kind", "payload", "created_at").
		Values(n.ID, n.OrderID, string(n.Kind), string(n.Payload), n.CreatedAt).
		Suffix("ON CONFLICT (order_id, kind) DO NOTHING").
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to enqueue notification: %w", err)
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return inserted > 0, nil
}

func (r *postgresRepo) PendingNotifications(ctx context.Context, limit int) ([]entities.Notification, error) {
	query, args := r.qb.Select("id", "order_id", "kind", "payload", "created_at", "published_at").
		From("notifications").
		Where(sq.Eq{"published_at": nil}).
		OrderBy("created_at").
		Limit(uint64(limit)).
		MustSql()

	var rows []Notification
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select notifications: %w", err)
	}

	result := make([]entities.Notification, 0, len(rows))
	for _, n := range rows {
		result = append(result, NotificationToEntity(n))
	}
	return result, nil
}

func (r *postgresRepo) MarkNotificationPublished(ctx context.Context, id string) error {
	query, args := r.qb.Update("notifications").
		Set("published_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "published_at": nil}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to mark notification published: %w", err)
	}
	return nil
}
