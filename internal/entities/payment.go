package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Provider string

const (
	ProviderMpesa  Provider = "mpesa"
	ProviderHosted Provider = "hosted"
)

type ChargeRequest struct {
	OrderID string
	Amount  decimal.Decimal
	Phone   string
	Email   string
}

// ChargeResult - ответ провайдера о принятии запроса на оплату.
type ChargeResult struct {
	CorrelationID string
	RedirectURL   string
	Message       string
}

// PaymentEvent - уведомление провайдера в общем для всех провайдеров виде.
type PaymentEvent struct {
	CorrelationID string
	Success       bool
	// Pending выставляется только при запросе статуса: покупатель ещё не завершил оплату.
	Pending    bool
	ResultCode string
	Reason     string
	Reference  string
	Amount     decimal.Decimal
	PaidAt     time.Time
}

// Confirmation - результат обработки подтверждения оплаты.
// Applied равно false для дубликата или если другое подтверждение успело раньше.
type Confirmation struct {
	OrderID string
	Status  OrderStatus
	Applied bool
	Pending bool
	Reason  string
}
