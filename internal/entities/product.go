package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Variation struct {
	ID    int64
	Size  string
	Price decimal.Decimal
}

type Product struct {
	ID   int64
	Name string

	DealPrice     decimal.NullDecimal
	DealStartTime *time.Time
	DealEndTime   *time.Time

	Variations []Variation
}
