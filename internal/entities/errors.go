package entities

import (
	"errors"
	"fmt"
)

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrInvalidOrder     = errors.New("invalid order data")
	ErrProductNotFound  = errors.New("product not found")
	ErrCartItemNotFound = errors.New("cart item not found")

	ErrEmptyCart          = errors.New("cart is empty")
	ErrCartChanged        = errors.New("cart changed during checkout")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDiscountInvalid    = errors.New("invalid or expired discount code")
	ErrPricingUnavailable = errors.New("pricing unavailable")

	ErrInvalidStateTransition = errors.New("invalid order state transition")
	// ErrStatusConflict означает, что условное обновление статуса не применилось:
	// текущий статус заказа уже не совпадает с ожидаемым.
	ErrStatusConflict = errors.New("order status changed concurrently")

	ErrUnknownProvider   = errors.New("unknown payment provider")
	ErrInvalidSignature  = errors.New("invalid signature")
	ErrInvalidPayload    = errors.New("invalid payment payload")
	ErrStalePayment      = errors.New("payment event is outside freshness window")
	ErrReferenceMismatch = errors.New("payment reference does not match order")

	// ErrDataRejected - хранилище отклонило данные (классы SQLSTATE 22 и 23).
	ErrDataRejected = errors.New("data rejected by storage")
)

// UpstreamError возвращается, если провайдер недоступен или отклонил запрос.
// Статус заказа не меняется, запрос можно повторить.
type UpstreamError struct {
	Provider  Provider
	Op        string
	Retryable bool
	Err       error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Provider, e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
