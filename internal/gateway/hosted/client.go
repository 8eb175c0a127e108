// Package hosted реализует оплату через страницу провайдера (initialize / verify by reference).
package hosted

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/storefront/internal/entities"
	"github.com/SergeyBogomolovv/storefront/internal/gateway"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Config struct {
	BaseURL       string
	SecretKey     string
	WebhookSecret string
	CallbackURL   string
	Currency      string
}

type Client struct {
	gateway.Signer

	cfg    Config
	http   *http.Client
	logger *slog.Logger
	newRef func() string
}

func New(logger *slog.Logger, cfg Config, httpClient *http.Client) *Client {
	return &Client{
		Signer: gateway.NewSigner(cfg.WebhookSecret),
		cfg:    cfg,
		http:   httpClient,
		logger: logger.With(slog.String("gateway", string(entities.ProviderHosted))),
		newRef: uuid.NewString,
	}
}

func (c *Client) Name() entities.Provider {
	return entities.ProviderHosted
}

type initializeRequest struct {
	Email       string            `json:"email"`
	Amount      int64             `json:"amount"`
	Reference   string            `json:"reference"`
	CallbackURL string            `json:"callback_url,omitempty"`
	Currency    string            `json:"currency,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

type initializeResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	} `json:"data"`
}

type transaction struct {
	Reference       string          `json:"reference"`
	Status          string          `json:"status"`
	Amount          json.Number     `json:"amount"`
	GatewayResponse string          `json:"gateway_response"`
	PaidAt          string          `json:"paid_at"`
	Metadata        json.RawMessage `json:"metadata"`
}

type verifyResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    transaction `json:"data"`
}

// Charge создаёт транзакцию и возвращает ссылку на страницу оплаты.
// Сумма передаётся в минимальных единицах валюты.
func (c *Client) Charge(ctx context.Context, req entities.ChargeRequest) (entities.ChargeResult, error) {
	if req.Email == "" {
		return entities.ChargeResult{}, fmt.Errorf("%w: email is required", entities.ErrInvalidInput)
	}

	body := initializeRequest{
		Email:       req.Email,
		Amount:      toMinorUnits(req.Amount),
		Reference:   c.newRef(),
		CallbackURL: c.cfg.CallbackURL,
		Currency:    c.cfg.Currency,
		Metadata:    map[string]string{"order_id": req.OrderID},
	}

	var resp initializeResponse
	if err := gateway.DoJSON(ctx, c.http, http.MethodPost, c.url("/transaction/initialize"), c.auth(), body, &resp); err != nil {
		return entities.ChargeResult{}, describe(err)
	}
	if !resp.Status || resp.Data.AuthorizationURL == "" {
		return entities.ChargeResult{}, fmt.Errorf("initialize rejected: %s", resp.Message)
	}

	reference := resp.Data.Reference
	if reference == "" {
		reference = body.Reference
	}

	c.logger.InfoContext(ctx, "transaction initialized",
		slog.String("order_id", req.OrderID),
		slog.String("reference", reference),
	)

	return entities.ChargeResult{
		CorrelationID: reference,
		RedirectURL:   resp.Data.AuthorizationURL,
		Message:       resp.Message,
	}, nil
}

func (c *Client) Query(ctx context.Context, correlationID string) (entities.PaymentEvent, error) {
	var resp verifyResponse
	path := "/transaction/verify/" + url.PathEscape(correlationID)
	if err := gateway.DoJSON(ctx, c.http, http.MethodGet, c.url(path), c.auth(), nil, &resp); err != nil {
		return entities.PaymentEvent{}, describe(err)
	}
	if !resp.Status {
		return entities.PaymentEvent{}, fmt.Errorf("verify rejected: %s", resp.Message)
	}

	ev, err := toEvent(resp.Data)
	if err != nil {
		return entities.PaymentEvent{}, err
	}
	if ev.CorrelationID == "" {
		ev.CorrelationID = correlationID
	}
	return ev, nil
}

type webhookEvent struct {
	Event string       `json:"event"`
	Data  *transaction `json:"data"`
}

// ParseEvent разбирает тело вебхука. Подпись должна быть проверена до вызова.
func (c *Client) ParseEvent(body []byte) (entities.PaymentEvent, error) {
	var ev webhookEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return entities.PaymentEvent{}, fmt.Errorf("%w: %v", entities.ErrInvalidPayload, err)
	}
	if ev.Event == "" || ev.Data == nil || ev.Data.Reference == "" {
		return entities.PaymentEvent{}, fmt.Errorf("%w: missing event fields", entities.ErrInvalidPayload)
	}

	res, err := toEvent(*ev.Data)
	if err != nil {
		return entities.PaymentEvent{}, err
	}
	if res.Pending {
		return entities.PaymentEvent{}, fmt.Errorf("%w: event %q is not final", entities.ErrInvalidPayload, ev.Event)
	}
	return res, nil
}

func toEvent(tx transaction) (entities.PaymentEvent, error) {
	ev := entities.PaymentEvent{
		CorrelationID: tx.Reference,
		ResultCode:    tx.Status,
		Reason:        tx.GatewayResponse,
		Reference:     tx.Reference,
	}

	if tx.Amount != "" {
		minor, err := decimal.NewFromString(tx.Amount.String())
		if err != nil {
			return entities.PaymentEvent{}, fmt.Errorf("%w: bad amount %q", entities.ErrInvalidPayload, tx.Amount)
		}
		ev.Amount = minor.Shift(-2)
	}

	switch strings.ToLower(tx.Status) {
	case "success":
		ev.Success = true
		if tx.PaidAt != "" {
			paidAt, err := time.Parse(time.RFC3339, tx.PaidAt)
			if err != nil {
				return entities.PaymentEvent{}, fmt.Errorf("%w: bad paid_at %q", entities.ErrInvalidPayload, tx.PaidAt)
			}
			ev.PaidAt = paidAt.UTC()
		}
	case "failed", "abandoned", "reversed":
		if ev.Reason == "" {
			ev.Reason = tx.Status
		}
	case "ongoing", "pending", "processing", "queued":
		ev.Pending = true
	default:
		return entities.PaymentEvent{}, fmt.Errorf("%w: unknown transaction status %q", entities.ErrInvalidPayload, tx.Status)
	}
	return ev, nil
}

func toMinorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}

func (c *Client) auth() http.Header {
	header := http.Header{}
	header.Set("Authorization", "Bearer "+c.cfg.SecretKey)
	return header
}

func (c *Client) url(path string) string {
	return strings.TrimRight(c.cfg.BaseURL, "/") + path
}

func describe(err error) error {
	var statusErr *gateway.StatusError
	if !errors.As(err, &statusErr) {
		return err
	}
	var resp struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(statusErr.Body, &resp) == nil && resp.Message != "" {
		return fmt.Errorf("provider error %d: %s", statusErr.StatusCode, resp.Message)
	}
	return err
}
