package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/storefront/internal/entities"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID        string `db:"id"`
	SessionID string `db:"session_id"`

	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Email     string `db:"email"`
	Phone     string `db:"phone"`
	Address   string `db:"address"`
	Town      string `db:"town"`

	DeliveryCost       decimal.Decimal `db:"delivery_cost"`
	DiscountCode       sql.NullString  `db:"discount_code"`
	DiscountPercentage int             `db:"discount_percentage"`
	TotalPrice         decimal.Decimal `db:"total_price"`

	Status           string         `db:"status"`
	Provider         sql.NullString `db:"provider"`
	CorrelationID    sql.NullString `db:"correlation_id"`
	PaymentReference sql.NullString `db:"payment_reference"`
	FailureReason    sql.NullString `db:"failure_reason"`
	PaidAt           sql.NullTime   `db:"paid_at"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type OrderItem struct {
	ID          int64           `db:"id"`
	OrderID     string          `db:"order_id"`
	ProductID   int64           `db:"product_id"`
	VariationID int64           `db:"variation_id"`
	Name        string          `db:"name"`
	Size        string          `db:"size"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
	Quantity    int             `db:"quantity"`
}

type CartItem struct {
	ID          int64           `db:"id"`
	SessionID   string          `db:"session_id"`
	ProductID   int64           `db:"product_id"`
	VariationID int64           `db:"variation_id"`
	Name        string          `db:"name"`
	Size        string          `db:"size"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
	Quantity    int             `db:"quantity"`
	CreatedAt   time.Time       `db:"created_at"`
}

type Product struct {
	ID            int64               `db:"id"`
	Name          string              `db:"name"`
	DealPrice     decimal.NullDecimal `db:"deal_price"`
	DealStartTime sql.NullTime        `db:"deal_start_time"`
	DealEndTime   sql.NullTime        `db:"deal_end_time"`
}

type Variation struct {
	ID        int64           `db:"id"`
	ProductID int64           `db:"product_id"`
	Size      string          `db:"size"`
	Price     decimal.Decimal `db:"price"`
}

type DiscountCode struct {
	Code       string    `db:"code"`
	Percentage int       `db:"percentage"`
	ExpiresAt  time.Time `db:"expires_at"`
}

type Notification struct {
	ID          string       `db:"id"`
	OrderID     string       `db:"order_id"`
	Kind        string       `db:"kind"`
	Payload     []byte       `db:"payload"`
	CreatedAt   time.Time    `db:"created_at"`
	PublishedAt sql.NullTime `db:"published_at"`
}

func OrderItemToEntity(i OrderItem) entities.OrderItem {
	return entities.OrderItem{
		ID:          i.ID,
		ProductID:   i.ProductID,
		VariationID: i.VariationID,
		Name:        i.Name,
		Size:        i.Size,
		UnitPrice:   i.UnitPrice,
		Quantity:    i.Quantity,
	}
}

func OrderToEntity(o Order, items []OrderItem) entities.Order {
	order := entities.Order{
		ID:        o.ID,
		SessionID: o.SessionID,
		Customer: entities.Customer{
			FirstName: o.FirstName,
			LastName:  o.LastName,
			Email:     o.Email,
			Phone:     o.Phone,
			Address:   o.Address,
			Town:      o.Town,
		},
		DeliveryCost:       o.DeliveryCost,
		DiscountCode:       nullStringToString(o.DiscountCode),
		DiscountPercentage: o.DiscountPercentage,
		TotalPrice:         o.TotalPrice,
		Status:             entities.OrderStatus(o.Status),
		Provider:           entities.Provider(nullStringToString(o.Provider)),
		CorrelationID:      nullStringToString(o.CorrelationID),
		PaymentReference:   nullStringToString(o.PaymentReference),
		FailureReason:      nullStringToString(o.FailureReason),
		PaidAt:             nullTimeToTime(o.PaidAt),
		CreatedAt:          o.CreatedAt.UTC(),
		UpdatedAt:          o.UpdatedAt.UTC(),
	}

	if len(items) > 0 {
		order.Items = make([]entities.OrderItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, OrderItemToEntity(it))
		}
	}

	return order
}

func CartItemToEntity(i CartItem) entities.CartItem {
	return entities.CartItem{
		ID:          i.ID,
		SessionID:   i.SessionID,
		ProductID:   i.ProductID,
		VariationID: i.VariationID,
		Name:        i.Name,
		Size:        i.Size,
		UnitPrice:   i.UnitPrice,
		Quantity:    i.Quantity,
		CreatedAt:   i.CreatedAt.UTC(),
	}
}

func ProductToEntity(p Product, variations []Variation) entities.Product {
	product := entities.Product{
		ID:        p.ID,
		Name:      p.Name,
		DealPrice: p.DealPrice,
	}
	if p.DealStartTime.Valid {
		t := p.DealStartTime.Time.UTC()
		product.DealStartTime = &t
	}
	if p.DealEndTime.Valid {
		t := p.DealEndTime.Time.UTC()
		product.DealEndTime = &t
	}

	for _, v := range variations {
		product.Variations = append(product.Variations, entities.Variation{
			ID:    v.ID,
			Size:  v.Size,
			Price: v.Price,
		})
	}
	return product
}

func DiscountToEntity(d DiscountCode) entities.DiscountCode {
	return entities.DiscountCode{
		Code:       d.Code,
		Percentage: d.Percentage,
		ExpiresAt:  d.ExpiresAt.UTC(),
	}
}

func NotificationToEntity(n Notification) entities.Notification {
	notification := entities.Notification{
		ID:        n.ID,
		OrderID:   n.OrderID,
		Kind:      entities.NotificationKind(n.Kind),
		Payload:   n.Payload,
		CreatedAt: n.CreatedAt.UTC(),
	}
	if n.PublishedAt.Valid {
		t := n.PublishedAt.Time.UTC()
		notification.PublishedAt = &t
	}
	return notification
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullTimeToTime(nt sql.NullTime) time.Time {
	if nt.Valid {
		return nt.Time.UTC()
	}
	return time.Time{}
}
