package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type NotificationKind string

const NotificationOrderConfirmation NotificationKind = "order_confirmation"

// Notification - запись outbox, публикуется в брокер после коммита транзакции.
type Notification struct {
	ID          string
	OrderID     string
	Kind        NotificationKind
	Payload     []byte
	CreatedAt   time.Time
	PublishedAt *time.Time
}

type ConfirmationLine struct {
	Name      string          `json:"name"`
	Size      string          `json:"size,omitempty"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// OrderConfirmation - содержимое уведомления order_confirmation.
// Строится из позиций самого заказа, а не из текущего каталога.
type OrderConfirmation struct {
	OrderID            string             `json:"order_id"`
	CustomerName       string             `json:"customer_name"`
	Email              string             `json:"email"`
	Lines              []ConfirmationLine `json:"lines"`
	DeliveryCost       decimal.Decimal    `json:"delivery_cost"`
	DiscountCode       string             `json:"discount_code,omitempty"`
	DiscountPercentage int                `json:"discount_percentage,omitempty"`
	Total              decimal.Decimal    `json:"total"`
	PaymentReference   string             `json:"payment_reference,omitempty"`
	PaidAt             time.Time          `json:"paid_at"`
}

func NewOrderConfirmation(o Order) OrderConfirmation {
	lines := make([]ConfirmationLine, 0, len(o.Items))
	for _, it := range o.Items {
		lines = append(lines, ConfirmationLine{
			Name:      it.Name,
			Size:      it.Size,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			LineTotal: it.LineTotal(),
		})
	}

	return OrderConfirmation{
		OrderID:            o.ID,
		CustomerName:       o.Customer.FullName(),
		Email:              o.Customer.Email,
		Lines:              lines,
		DeliveryCost:       o.DeliveryCost,
		DiscountCode:       o.DiscountCode,
		DiscountPercentage: o.DiscountPercentage,
		Total:              o.TotalPrice,
		PaymentReference:   o.PaymentReference,
		PaidAt:             o.PaidAt,
	}
}
