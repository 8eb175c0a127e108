package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/SergeyBogomolovv/storefront/internal/entities"
	"github.com/SergeyBogomolovv/storefront/internal/gateway"
	"github.com/SergeyBogomolovv/storefront/internal/service"
	"github.com/SergeyBogomolovv/storefront/pkg/utils"
	"github.com/go-chi/chi/v5"
)

const maxWebhookBody = 1 << 20

// Pay запускает оплату заказа у выбранного провайдера.
// @Summary      Оплатить заказ
// @Description  Отправляет запрос провайдеру и переводит заказ в awaiting_payment
// @Tags         payments
// @Accept       json
// @Param        request  body  PayRequest  true  "Заказ и провайдер"
// @Success      200  {object}  PaymentResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Заказ уже оплачивается или оплачен"
// @Failure      500  {object}  utils.ErrorResponse "Провайдер недоступен, запрос можно повторить"
// @Router       /order/pay [post]
func (h *HTTPHandler) Pay(w http.ResponseWriter, r *http.Request) {
	var req PayRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	provider := entities.Provider(req.Provider)
	res, err := h.payments.InitiatePayment(r.Context(), service.PaymentRequest{
		OrderID:  req.OrderID,
		Provider: provider,
		Phone:    req.Phone,
		Email:    req.Email,
	})
	if err != nil {
		paymentInitiations.WithLabelValues(req.Provider, outcomeError).Inc()
		h.writeServiceError(w, r, "initiate payment", err)
		return
	}

	paymentInitiations.WithLabelValues(req.Provider, outcomeAccepted).Inc()
	utils.WriteJSON(w, PaymentResultToJSON(res), http.StatusOK)
}

// HostedWebhook принимает уведомления провайдера hosted checkout.
// @Summary      Webhook провайдера
// @Tags         payments
// @Accept       json
// @Param        X-Webhook-Signature  header  string  true  "HMAC-SHA256 тела запроса"
// @Success      200  {object}  ConfirmationResponse
// @Failure      400  {object}  utils.ErrorResponse "Неверная подпись, payload или устаревшее событие"
// @Failure      404  {object}  utils.ErrorResponse "Неизвестный correlation id"
// @Router       /webhook [post]
func (h *HTTPHandler) HostedWebhook(w http.ResponseWriter, r *http.Request) {
	h.handleWebhook(w, r, entities.ProviderHosted)
}

// ProviderWebhook принимает уведомления указанного провайдера.
// @Summary      Webhook провайдера
// @Tags         payments
// @Accept       json
// @Param        provider             path    string  true  "Провайдер"  Enums(mpesa, hosted)
// @Param        X-Webhook-Signature  header  string  false  "HMAC-SHA256 тела запроса"
// @Param        token                query   string  false  "Токен из callback URL (M-Pesa)"
// @Success      200  {object}  ConfirmationResponse
// @Failure      400  {object}  utils.ErrorResponse "Неверная подпись, payload или устаревшее событие"
// @Failure      404  {object}  utils.ErrorResponse "Неизвестный correlation id"
// @Router       /webhook/{provider} [post]
func (h *HTTPHandler) ProviderWebhook(w http.ResponseWriter, r *http.Request) {
	h.handleWebhook(w, r, entities.Provider(chi.URLParam(r, "provider")))
}

func (h *HTTPHandler) handleWebhook(w http.ResponseWriter, r *http.Request, provider entities.Provider) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
	if err != nil {
		webhooksReceived.WithLabelValues(string(provider), outcomeRejected).Inc()
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.WriteError(w, "payload too large", http.StatusRequestEntityTooLarge)
			return
		}
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	signature := r.Header.Get(gateway.SignatureHeader)
	if signature == "" {
		signature = r.URL.Query().Get(gateway.CallbackTokenParam)
	}

	res, err := h.confirmations.HandleWebhook(r.Context(), provider, signature, body)
	if err != nil {
		webhooksReceived.WithLabelValues(string(provider), webhookOutcome(err)).Inc()
		h.writeServiceError(w, r, "handle webhook", err)
		return
	}

	webhooksReceived.WithLabelValues(string(provider), confirmationOutcome(res)).Inc()
	utils.WriteJSON(w, ConfirmationToJSON(res), http.StatusOK)
}

// VerifyPayment проверяет статус оплаты у провайдера.
// @Summary      Проверить оплату
// @Description  Запрашивает статус платежа у провайдера и применяет результат к заказу
// @Tags         payments
// @Accept       json
// @Param        request  body  VerifyPaymentRequest  true  "Заказ и ссылка на платёж"
// @Success      200  {object}  ConfirmationResponse
// @Failure      400  {object}  utils.ErrorResponse "Ссылка не совпадает с заказом"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Заказ не ожидает оплаты"
// @Failure      500  {object}  utils.ErrorResponse "Провайдер недоступен, запрос можно повторить"
// @Router       /verify-payment [post]
func (h *HTTPHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req VerifyPaymentRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	res, err := h.confirmations.VerifyPayment(r.Context(), req.OrderID, req.Reference)
	if err != nil {
		h.writeServiceError(w, r, "verify payment", err)
		return
	}

	confirmations.WithLabelValues(sourceVerify, confirmationOutcome(res)).Inc()
	utils.WriteJSON(w, ConfirmationToJSON(res), http.StatusOK)
}

func confirmationOutcome(c entities.Confirmation) string {
	switch {
	case c.Pending:
		return outcomePending
	case c.Applied:
		return outcomeApplied
	default:
		return outcomeNoop
	}
}

func webhookOutcome(err error) string {
	var upstream *entities.UpstreamError
	switch {
	case errors.Is(err, entities.ErrInvalidSignature):
		return outcomeBadSignature
	case errors.Is(err, entities.ErrStalePayment):
		return outcomeStale
	case errors.Is(err, entities.ErrOrderNotFound):
		return outcomeUnknown
	case errors.As(err, &upstream):
		return outcomeError
	case errors.Is(err, entities.ErrInvalidPayload), errors.Is(err, entities.ErrUnknownProvider):
		return outcomeRejected
	default:
		return outcomeError
	}
}
