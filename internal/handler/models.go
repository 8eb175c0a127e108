package handler

import (
	"time"

	"github.com/SergeyBogomolovv/storefront/internal/entities"
	"github.com/SergeyBogomolovv/storefront/internal/service"
	"github.com/shopspring/decimal"
)

// AddCartItemRequest добавление товара в корзину
type AddCartItemRequest struct {
	ProductID   int64 `json:"product_id" validate:"required,gt=0"`
	VariationID int64 `json:"variation_id,omitempty" validate:"gte=0"`
	Quantity    int   `json:"quantity" validate:"required,gt=0,lte=1000"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0,lte=1000"`
}

// CartItem позиция корзины с ценой на момент добавления
type CartItem struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"product_id"`
	VariationID int64           `json:"variation_id,omitempty"`
	Name        string          `json:"name"`
	Size        string          `json:"size,omitempty"`
	UnitPrice   decimal.Decimal `json:"unit_price" swaggertype:"string" example:"450.00"`
	Quantity    int             `json:"quantity"`
	LineTotal   decimal.Decimal `json:"line_total" swaggertype:"string" example:"900.00"`
}

type Cart struct {
	Items    []CartItem      `json:"items"`
	Subtotal decimal.Decimal `json:"subtotal" swaggertype:"string" example:"900.00"`
}

// PlaceOrderRequest данные покупателя для оформления заказа
type PlaceOrderRequest struct {
	FirstName    string          `json:"first_name" validate:"required,max=100"`
	LastName     string          `json:"last_name" validate:"required,max=100"`
	Email        string          `json:"email" validate:"required,email"`
	Phone        string          `json:"phone" validate:"required,min=9,max=20"`
	Address      string          `json:"address" validate:"required,max=255"`
	Town         string          `json:"town" validate:"required,max=100"`
	DeliveryCost decimal.Decimal `json:"delivery_cost" swaggertype:"string" example:"100.00"`
	DiscountCode string          `json:"discount_code,omitempty" validate:"omitempty,max=64"`
}

type Customer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Town      string `json:"town"`
}

type OrderItem struct {
	ProductID   int64           `json:"product_id"`
	VariationID int64           `json:"variation_id,omitempty"`
	Name        string          `json:"name"`
	Size        string          `json:"size,omitempty"`
	UnitPrice   decimal.Decimal `json:"unit_price" swaggertype:"string" example:"450.00"`
	Quantity    int             `json:"quantity"`
	LineTotal   decimal.Decimal `json:"line_total" swaggertype:"string" example:"900.00"`
}

// Order представляет заказ
type Order struct {
	ID                 string          `json:"order_id"`
	Status             string          `json:"status" example:"pending"`
	Customer           Customer        `json:"customer"`
	Items              []OrderItem     `json:"items"`
	DeliveryCost       decimal.Decimal `json:"delivery_cost" swaggertype:"string" example:"100.00"`
	DiscountCode       string          `json:"discount_code,omitempty"`
	DiscountPercentage int             `json:"discount_percentage,omitempty"`
	Total              decimal.Decimal `json:"total" swaggertype:"string" example:"990.00"`
	Provider           string          `json:"provider,omitempty"`
	CorrelationID      string          `json:"correlation_id,omitempty"`
	PaymentReference   string          `json:"payment_reference,omitempty"`
	FailureReason      string          `json:"failure_reason,omitempty"`
	PaidAt             *time.Time      `json:"paid_at,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}

// PayRequest запуск оплаты заказа
type PayRequest struct {
	OrderID  string `json:"order_id" validate:"required,uuid"`
	Provider string `json:"provider" validate:"required,oneof=mpesa hosted"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,min=9,max=20"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
}

type PaymentResponse struct {
	OrderID       string          `json:"order_id"`
	Status        string          `json:"status" example:"awaiting_payment"`
	Total         decimal.Decimal `json:"total" swaggertype:"string" example:"990.00"`
	CorrelationID string          `json:"correlation_id"`
	RedirectURL   string          `json:"redirect_url,omitempty"`
	Message       string          `json:"message,omitempty"`
}

type VerifyPaymentRequest struct {
	OrderID   string `json:"order_id" validate:"required,uuid"`
	Reference string `json:"reference" validate:"required,max=128"`
}

// ConfirmationResponse результат обработки подтверждения оплаты
type ConfirmationResponse struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status" example:"paid"`
	Applied bool   `json:"applied"`
	Pending bool   `json:"pending,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

type MarkPaidRequest struct {
	Reference string `json:"reference,omitempty" validate:"omitempty,max=128"`
}

type CreateDiscountRequest struct {
	Code       string    `json:"code" validate:"required,alphanum,max=64"`
	Percentage int       `json:"percentage" validate:"gte=0,lte=100"`
	ExpiresAt  time.Time `json:"expires_at" validate:"required"`
}

type Discount struct {
	Code       string    `json:"code" example:"SAVE10"`
	Percentage int       `json:"percentage" example:"10"`
	ExpiresAt  time.Time `json:"expires_at"`
}

func CartItemEntityToJSON(i entities.CartItem) CartItem {
	return CartItem{
		ID:          i.ID,
		ProductID:   i.ProductID,
		VariationID: i.VariationID,
		Name:        i.Name,
		Size:        i.Size,
		UnitPrice:   i.UnitPrice,
		Quantity:    i.Quantity,
		LineTotal:   i.LineTotal(),
	}
}

func CartEntityToJSON(items []entities.CartItem) Cart {
	cart := Cart{Items: make([]CartItem, 0, len(items)), Subtotal: decimal.Zero}
	for _, it := range items {
		cart.Items = append(cart.Items, CartItemEntityToJSON(it))
		cart.Subtotal = cart.Subtotal.Add(it.LineTotal())
	}
	return cart
}

func (r PlaceOrderRequest) ToService(sessionID string) service.PlaceOrderRequest {
	return service.PlaceOrderRequest{
		SessionID: sessionID,
		Customer: entities.Customer{
			FirstName: r.FirstName,
			LastName:  r.LastName,
			Email:     r.Email,
			Phone:     r.Phone,
			Address:   r.Address,
			Town:      r.Town,
		},
		DeliveryCost: r.DeliveryCost,
		DiscountCode: r.DiscountCode,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	order := Order{
		ID:     o.ID,
		Status: o.Status.String(),
		Customer: Customer{
			FirstName: o.Customer.FirstName,
			LastName:  o.Customer.LastName,
			Email:     o.Customer.Email,
			Phone:     o.Customer.Phone,
			Address:   o.Customer.Address,
			Town:      o.Customer.Town,
		},
		Items:              make([]OrderItem, 0, len(o.Items)),
		DeliveryCost:       o.DeliveryCost,
		DiscountCode:       o.DiscountCode,
		DiscountPercentage: o.DiscountPercentage,
		Total:              o.TotalPrice,
		Provider:           string(o.Provider),
		CorrelationID:      o.CorrelationID,
		PaymentReference:   o.PaymentReference,
		FailureReason:      o.FailureReason,
		CreatedAt:          o.CreatedAt,
	}
	if !o.PaidAt.IsZero() {
		paidAt := o.PaidAt
		order.PaidAt = &paidAt
	}

	for _, it := range o.Items {
		order.Items = append(order.Items, OrderItem{
			ProductID:   it.ProductID,
			VariationID: it.VariationID,
			Name:        it.Name,
			Size:        it.Size,
			UnitPrice:   it.UnitPrice,
			Quantity:    it.Quantity,
			LineTotal:   it.LineTotal(),
		})
	}
	return order
}

func PaymentResultToJSON(res service.PaymentResult) PaymentResponse {
	return PaymentResponse{
		OrderID:       res.Order.ID,
		Status:        res.Order.Status.String(),
		Total:         res.Order.TotalPrice,
		CorrelationID: res.CorrelationID,
		RedirectURL:   res.RedirectURL,
		Message:       res.Message,
	}
}

func ConfirmationToJSON(c entities.Confirmation) ConfirmationResponse {
	return ConfirmationResponse{
		OrderID: c.OrderID,
		Status:  c.Status.String(),
		Applied: c.Applied,
		Pending: c.Pending,
		Reason:  c.Reason,
	}
}

func DiscountEntityToJSON(d entities.DiscountCode) Discount {
	return Discount{
		Code:       d.Code,
		Percentage: d.Percentage,
		ExpiresAt:  d.ExpiresAt,
	}
}
