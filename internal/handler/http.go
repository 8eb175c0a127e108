package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/storefront/internal/entities"
	"github.com/SergeyBogomolovv/storefront/internal/middleware"
	"github.com/SergeyBogomolovv/storefront/internal/service"
	"github.com/SergeyBogomolovv/storefront/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type CartService interface {
	AddItem(ctx context.Context, sessionID string, productID, variationID int64, quantity int) (entities.CartItem, error)
	ListItems(ctx context.Context, sessionID string) ([]entities.CartItem, error)
	UpdateQuantity(ctx context.Context, sessionID string, itemID int64, quantity int) error
	RemoveItem(ctx context.Context, sessionID string, itemID int64) error
}

type OrderService interface {
	PlaceOrder(ctx context.Context, req service.PlaceOrderRequest) (entities.Order, error)
	GetOrder(ctx context.Context, orderID string) (entities.Order, error)
}

type PaymentService interface {
	InitiatePayment(ctx context.Context, req service.PaymentRequest) (service.PaymentResult, error)
}

type ConfirmationService interface {
	HandleWebhook(ctx context.Context, provider entities.Provider, signature string, body []byte) (entities.Confirmation, error)
	VerifyPayment(ctx context.Context, orderID, reference string) (entities.Confirmation, error)
	ConfirmManually(ctx context.Context, orderID, reference string) (entities.Confirmation, error)
}

type DiscountService interface {
	ValidateCode(ctx context.Context, code string) (entities.DiscountCode, error)
	CreateDiscount(ctx context.Context, d entities.DiscountCode) (entities.DiscountCode, error)
}

type Services struct {
	Cart          CartService
	Orders        OrderService
	Payments      PaymentService
	Confirmations ConfirmationService
	Discounts     DiscountService
}

type HTTPHandler struct {
	logger     *slog.Logger
	validate   *validator.Validate
	adminToken string

	cart          CartService
	orders        OrderService
	payments      PaymentService
	confirmations ConfirmationService
	discounts     DiscountService
}

func NewHTTPHandler(logger *slog.Logger, adminToken string, svc Services) *HTTPHandler {
	return &HTTPHandler{
		logger:        logger.With(slog.String("handler", "http")),
		validate:      validator.New(),
		adminToken:    adminToken,
		cart:          svc.Cart,
		orders:        svc.Orders,
		payments:      svc.Payments,
		confirmations: svc.Confirmations,
		discounts:     svc.Discounts,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.Session)

		r.Get("/cart", h.GetCart)
		r.Post("/cart/items", h.AddCartItem)
		r.Patch("/cart/items/{item_id}", h.UpdateCartItem)
		r.Delete("/cart/items/{item_id}", h.RemoveCartItem)

		r.Post("/order/place", h.PlaceOrder)
	})

	r.Get("/order/{order_id}", h.GetOrder)
	r.Post("/order/pay", h.Pay)

	r.Post("/webhook", h.HostedWebhook)
	r.Post("/webhook/{provider}", h.ProviderWebhook)
	r.Post("/verify-payment", h.VerifyPayment)

	r.Get("/discount/validate/{code}", h.ValidateDiscount)

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.AdminToken(h.adminToken))

		r.Post("/discounts", h.CreateDiscount)
		r.Post("/orders/{order_id}/mark-paid", h.MarkPaid)
	})
}

type errorMapping struct {
	err  error
	code int
}

// Порядок важен: первая совпавшая ошибка определяет ответ.
var errorMappings = []errorMapping{
	{entities.ErrOrderNotFound, http.StatusNotFound},
	{entities.ErrProductNotFound, http.StatusNotFound},
	{entities.ErrCartItemNotFound, http.StatusNotFound},

	{entities.ErrEmptyCart, http.StatusBadRequest},
	{entities.ErrInvalidInput, http.StatusBadRequest},
	{entities.ErrDiscountInvalid, http.StatusBadRequest},
	{entities.ErrPricingUnavailable, http.StatusBadRequest},
	{entities.ErrUnknownProvider, http.StatusBadRequest},
	{entities.ErrInvalidSignature, http.StatusBadRequest},
	{entities.ErrInvalidPayload, http.StatusBadRequest},
	{entities.ErrStalePayment, http.StatusBadRequest},
	{entities.ErrReferenceMismatch, http.StatusBadRequest},

	{entities.ErrInvalidStateTransition, http.StatusConflict},
	{entities.ErrStatusConflict, http.StatusConflict},
	{entities.ErrCartChanged, http.StatusConflict},
}

func (h *HTTPHandler) writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var upstream *entities.UpstreamError
	if errors.As(err, &upstream) {
		h.logger.WarnContext(r.Context(), "payment provider failed",
			slog.String("op", op),
			slog.String("provider", string(upstream.Provider)),
			slog.Any("error", err),
		)
		if upstream.Retryable {
			utils.WriteRetryableError(w, "payment provider unavailable", http.StatusInternalServerError)
			return
		}
		utils.WriteError(w, "payment provider error", http.StatusInternalServerError)
		return
	}

	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			utils.WriteError(w, m.err.Error(), m.code)
			return
		}
	}

	h.logger.ErrorContext(r.Context(), "failed to "+op, slog.Any("error", err))
	utils.WriteError(w, "internal server error", http.StatusInternalServerError)
}

func sessionID(r *http.Request) string {
	rc, _ := middleware.FromContext(r.Context())
	return rc.SessionID
}
