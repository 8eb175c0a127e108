package service

import (
	"context"
	"fmt"

	"github.com/SergeyBogomolovv/storefront/internal/entities"
	"github.com/shopspring/decimal"
)

type DiscountValidator interface {
	ValidateCode(ctx context.Context, code string) (entities.DiscountCode, error)
}

// Totals - расчёт стоимости корзины при оформлении.
type Totals struct {
	Lines              []entities.OrderItem
	Subtotal           decimal.Decimal
	DeliveryCost       decimal.Decimal
	DiscountCode       string
	DiscountPercentage int
	DiscountAmount     decimal.Decimal
	Total              decimal.Decimal
}

type Aggregator struct {
	discounts DiscountValidator
}

func NewAggregator(discounts DiscountValidator) *Aggregator {
	return &Aggregator{discounts: discounts}
}

var hundred = decimal.NewFromInt(100)

// Aggregate считает итог по захваченным в корзине ценам:
// (сумма позиций + доставка) * (1 - процент/100), с округлением до копеек.
// Недействительный код скидки отклоняет всю операцию.
func (a *Aggregator) Aggregate(ctx context.Context, items []entities.CartItem, deliveryCost decimal.Decimal, code string) (Totals, error) {
	if len(items) == 0 {
		return Totals{}, entities.ErrEmptyCart
	}
	if deliveryCost.IsNegative() {
		return Totals{}, fmt.Errorf("%w: delivery cost must not be negative", entities.ErrInvalidInput)
	}
	// Доставка хранится с точностью до копеек, итог должен сходиться с сохранённым значением.
	if !deliveryCost.Equal(deliveryCost.Round(2)) {
		return Totals{}, fmt.Errorf("%w: delivery cost %s has more than 2 decimal places", entities.ErrInvalidInput, deliveryCost.String())
	}

	t := Totals{
		Lines:        make([]entities.OrderItem, 0, len(items)),
		Subtotal:     decimal.Zero,
		DeliveryCost: deliveryCost,
	}
	for _, it := range items {
		if it.Quantity <= 0 {
			return Totals{}, fmt.Errorf("%w: cart item %d has quantity %d", entities.ErrInvalidInput, it.ID, it.Quantity)
		}
		line := entities.OrderItem{
			ProductID:   it.ProductID,
			VariationID: it.VariationID,
			Name:        it.Name,
			Size:        it.Size,
			UnitPrice:   it.UnitPrice,
			Quantity:    it.Quantity,
		}
		t.Lines = append(t.Lines, line)
		t.Subtotal = t.Subtotal.Add(line.LineTotal())
	}

	gross := t.Subtotal.Add(deliveryCost)
	t.Total = gross
	t.DiscountAmount = decimal.Zero

	if code = entities.NormalizeDiscountCode(code); code != "" {
		d, err := a.discounts.ValidateCode(ctx, code)
		if err != nil {
			return Totals{}, err
		}
		t.DiscountCode = d.Code
		t.DiscountPercentage = d.Percentage
		t.Total = gross.Mul(hundred.Sub(decimal.NewFromInt(int64(d.Percentage)))).Div(hundred)
		t.DiscountAmount = gross.Sub(t.Total.Round(2))
	}

	t.Total = t.Total.Round(2)
	return t, nil
}
