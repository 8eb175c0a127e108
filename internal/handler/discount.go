package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/storefront/internal/entities"
	"github.com/SergeyBogomolovv/storefront/pkg/utils"
	"github.com/go-chi/chi/v5"
)

// ValidateDiscount проверяет код скидки.
// @Summary      Проверить код скидки
// @Tags         discounts
// @Param        code  path  string  true  "Код скидки"
// @Success      200  {object}  Discount
// @Failure      404  {object}  utils.ErrorResponse "Код не найден или истёк"
// @Router       /discount/validate/{code} [get]
func (h *HTTPHandler) ValidateDiscount(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if err := h.validate.Var(code, "required,max=64"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	d, err := h.discounts.ValidateCode(r.Context(), code)
	if errors.Is(err, entities.ErrDiscountInvalid) {
		utils.WriteError(w, entities.ErrDiscountInvalid.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		h.writeServiceError(w, r, "validate discount", err)
		return
	}
	utils.WriteJSON(w, DiscountEntityToJSON(d), http.StatusOK)
}

// CreateDiscount создаёт или перезаписывает код скидки.
// @Summary      Создать код скидки
// @Tags         admin
// @Accept       json
// @Param        X-Admin-Token  header  string                 true  "Токен администратора"
// @Param        request        body    CreateDiscountRequest  true  "Код скидки"
// @Success      201  {object}  Discount
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401  {object}  utils.ErrorResponse "Нет доступа"
// @Router       /admin/discounts [post]
func (h *HTTPHandler) CreateDiscount(w http.ResponseWriter, r *http.Request) {
	var req CreateDiscountRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	d, err := h.discounts.CreateDiscount(r.Context(), entities.DiscountCode{
		Code:       req.Code,
		Percentage: req.Percentage,
		ExpiresAt:  req.ExpiresAt,
	})
	if err != nil {
		h.writeServiceError(w, r, "create discount", err)
		return
	}
	utils.WriteJSON(w, DiscountEntityToJSON(d), http.StatusCreated)
}

// MarkPaid подтверждает оплату заказа вручную.
// @Summary      Подтвердить оплату вручную
// @Tags         admin
// @Accept       json
// @Param        X-Admin-Token  header  string           true   "Токен администратора"
// @Param        order_id       path    string           true   "Идентификатор заказа"
// @Param        request        body    MarkPaidRequest  false  "Ссылка на платёж"
// @Success      200  {object}  ConfirmationResponse
// @Failure      401  {object}  utils.ErrorResponse "Нет доступа"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Заказ уже отклонён"
// @Router       /admin/orders/{order_id}/mark-paid [post]
func (h *HTTPHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "order_id")

	var req MarkPaidRequest
	if r.ContentLength != 0 {
		if err := utils.DecodeBody(r, &req); err != nil {
			utils.WriteError(w, "invalid request body", http.StatusBadRequest)
			return
		}
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	res, err := h.confirmations.ConfirmManually(r.Context(), orderID, req.Reference)
	if err != nil {
		h.writeServiceError(w, r, "confirm payment manually", err)
		return
	}

	h.logger.InfoContext(r.Context(), "payment confirmed manually",
		slog.String("order_id", orderID),
		slog.Bool("applied", res.Applied),
	)
	confirmations.WithLabelValues(sourceManual, confirmationOutcome(res)).Inc()
	utils.WriteJSON(w, ConfirmationToJSON(res), http.StatusOK)
}
