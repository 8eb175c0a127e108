package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem хранит цену, зафиксированную при добавлении товара в корзину.
type CartItem struct {
	ID          int64
	SessionID   string
	ProductID   int64
	VariationID int64
	Name        string
	Size        string
	UnitPrice   decimal.Decimal
	Quantity    int
	CreatedAt   time.Time
}

func (i CartItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
