package pricing

import (
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/storefront/internal/entities"
	"github.com/shopspring/decimal"
)

// Resolve возвращает цену товара в момент now.
// Действующая акция важнее цены вариации. variationID 0 выбирает первую вариацию.
func Resolve(p entities.Product, variationID int64, now time.Time) (decimal.Decimal, error) {
	if dealActive(p, now) {
		return p.DealPrice.Decimal, nil
	}

	v, err := selectVariation(p, variationID)
	if err != nil {
		return decimal.Zero, err
	}
	return v.Price, nil
}

// SelectVariation возвращает вариацию, на которую ссылается позиция корзины.
// Для товара без вариаций возвращается пустая Variation, если действует акция.
func SelectVariation(p entities.Product, variationID int64, now time.Time) (entities.Variation, error) {
	v, err := selectVariation(p, variationID)
	if err != nil && variationID == 0 && dealActive(p, now) {
		return entities.Variation{}, nil
	}
	return v, err
}

func selectVariation(p entities.Product, variationID int64) (entities.Variation, error) {
	if len(p.Variations) == 0 {
		return entities.Variation{}, fmt.Errorf("%w: product %d has no variations", entities.ErrPricingUnavailable, p.ID)
	}
	if variationID == 0 {
		return p.Variations[0], nil
	}
	for _, v := range p.Variations {
		if v.ID == variationID {
			return v, nil
		}
	}
	return entities.Variation{}, fmt.Errorf("%w: product %d has no variation %d", entities.ErrPricingUnavailable, p.ID, variationID)
}

func dealActive(p entities.Product, now time.Time) bool {
	if !p.DealPrice.Valid || p.DealStartTime == nil || p.DealEndTime == nil {
		return false
	}
	now = now.UTC()
	return !now.Before(p.DealStartTime.UTC()) && !now.After(p.DealEndTime.UTC())
}
