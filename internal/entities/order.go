package entities

import (
	"bytes"
	"encoding/gob"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending         OrderStatus = "pending"
	StatusAwaitingPayment OrderStatus = "awaiting_payment"
	StatusPaid            OrderStatus = "paid"
	StatusFailed          OrderStatus = "failed"
)

// transitions описывает допустимые переходы статуса заказа.
// Переход pending -> paid используется при ручном подтверждении оплаты.
var transitions = map[OrderStatus][]OrderStatus{
	StatusPending:         {StatusAwaitingPayment, StatusPaid},
	StatusAwaitingPayment: {StatusPaid, StatusFailed},
}

func CanTransition(from, to OrderStatus) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminal сообщает, что из статуса s переходов больше нет.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusPaid || s == StatusFailed
}

func (s OrderStatus) String() string {
	return string(s)
}

type Customer struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	Town      string
}

func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// OrderItem - неизменяемый снимок позиции корзины на момент оформления заказа.
type OrderItem struct {
	ID          int64
	ProductID   int64
	VariationID int64
	Name        string
	Size        string
	UnitPrice   decimal.Decimal
	Quantity    int
}

func (i OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Order struct {
	ID        string
	SessionID string
	Customer  Customer

	DeliveryCost       decimal.Decimal
	DiscountCode       string
	DiscountPercentage int
	TotalPrice         decimal.Decimal

	Status           OrderStatus
	Provider         Provider
	CorrelationID    string
	PaymentReference string
	FailureReason    string
	PaidAt           time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	Items []OrderItem
}

// StatusUpdate содержит поля, которые записываются вместе со сменой статуса.
// Пустые поля не меняются.
type StatusUpdate struct {
	Status           OrderStatus
	Provider         Provider
	CorrelationID    string
	PaymentReference string
	FailureReason    string
	PaidAt           time.Time
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	if err := dec.Decode(o); err != nil {
		return ErrInvalidOrder
	}
	return nil
}

func init() {
	gob.Register(Order{})
	gob.Register(OrderItem{})
	gob.Register(Customer{})
	gob.Register(DiscountCode{})
}
