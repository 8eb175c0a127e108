// Package mpesa реализует оплату через M-Pesa Daraja STK push.
package mpesa

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/storefront/internal/entities"
	"github.com/SergeyBogomolovv/storefront/internal/gateway"
	"golang.org/x/sync/singleflight"
)

const (
	timestampLayout = "20060102150405"

	// Запрос ещё обрабатывается, клиент не подтвердил оплату на телефоне.
	queryPendingCode = "500.001.1001"

	tokenExpiryMargin = time.Minute
)

// Daraja принимает и возвращает время по Найроби.
var eat = time.FixedZone("EAT", 3*60*60)

type Config struct {
	BaseURL          string
	ConsumerKey      string
	ConsumerSecret   string
	ShortCode        string
	Passkey          string
	CallbackURL      string
	CallbackSecret   string
	AccountReference string
}

type Client struct {
	gateway.Signer

	cfg    Config
	http   *http.Client
	logger *slog.Logger
	now    func() time.Time

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
	tokenGroup  singleflight.Group
}

func New(logger *slog.Logger, cfg Config, httpClient *http.Client) *Client {
	return &Client{
		Signer: gateway.NewSigner(cfg.CallbackSecret),
		cfg:    cfg,
		http:   httpClient,
		logger: logger.With(slog.String("gateway", string(entities.ProviderMpesa))),
		now:    time.Now,
	}
}

func (c *Client) Name() entities.Provider {
	return entities.ProviderMpesa
}

// VerifySignature принимает подпись тела или токен из callback URL: Daraja запросы не подписывает.
func (c *Client) VerifySignature(body []byte, signature string) error {
	if err := c.Signer.VerifySignature(body, signature); err == nil {
		return nil
	}
	return c.Signer.VerifyCallbackToken(signature)
}

func (c *Client) callbackURL() string {
	if c.cfg.CallbackURL == "" {
		return ""
	}
	u, err := url.Parse(c.cfg.CallbackURL)
	if err != nil {
		return c.cfg.CallbackURL
	}
	q := u.Query()
	q.Set(gateway.CallbackTokenParam, c.CallbackToken())
	u.RawQuery = q.Encode()
	return u.String()
}

type stkPushRequest struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	TransactionType   string `json:"TransactionType"`
	Amount            int64  `json:"Amount"`
	PartyA            string `json:"PartyA"`
	PartyB            string `json:"PartyB"`
	PhoneNumber       string `json:"PhoneNumber"`
	CallBackURL       string `json:"CallBackURL"`
	AccountReference  string `json:"AccountReference"`
	TransactionDesc   string `json:"TransactionDesc"`
}

type stkPushResponse struct {
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	CustomerMessage     string `json:"CustomerMessage"`
}

type stkQueryRequest struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	CheckoutRequestID string `json:"CheckoutRequestID"`
}

type stkQueryResponse struct {
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResultCode          string `json:"ResultCode"`
	ResultDesc          string `json:"ResultDesc"`
}

type errorResponse struct {
	RequestID    string `json:"requestId"`
	ErrorCode    string `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
}

// Charge отправляет STK push на телефон покупателя. Сумма округляется вверх до целых шиллингов.
func (c *Client) Charge(ctx context.Context, req entities.ChargeRequest) (entities.ChargeResult, error) {
	phone, err := NormalizePhone(req.Phone)
	if err != nil {
		return entities.ChargeResult{}, err
	}

	token, err := c.accessToken(ctx)
	if err != nil {
		return entities.ChargeResult{}, err
	}

	password, timestamp := c.password()
	body := stkPushRequest{
		BusinessShortCode: c.cfg.ShortCode,
		Password:          password,
		Timestamp:         timestamp,
		TransactionType:   "CustomerPayBillOnline",
		Amount:            req.Amount.Ceil().IntPart(),
		PartyA:            phone,
		PartyB:            c.cfg.ShortCode,
		PhoneNumber:       phone,
		CallBackURL:       c.callbackURL(),
		AccountReference:  c.cfg.AccountReference,
		TransactionDesc:   "Order " + req.OrderID,
	}

	var resp stkPushResponse
	if err := gateway.DoJSON(ctx, c.http, http.MethodPost, c.url("/mpesa/stkpush/v1/processrequest"), bearer(token), body, &resp); err != nil {
		return entities.ChargeResult{}, describe(err)
	}
	if resp.ResponseCode != "0" {
		return entities.ChargeResult{}, fmt.Errorf("stk push rejected: %s (code %s)", resp.ResponseDescription, resp.ResponseCode)
	}
	if resp.CheckoutRequestID == "" {
		return entities.ChargeResult{}, errors.New("stk push accepted without checkout request id")
	}

	c.logger.InfoContext(ctx, "stk push accepted",
		slog.String("order_id", req.OrderID),
		slog.String("checkout_request_id", resp.CheckoutRequestID),
	)

	return entities.ChargeResult{
		CorrelationID: resp.CheckoutRequestID,
		Message:       resp.CustomerMessage,
	}, nil
}

// Query запрашивает статус STK push. Пока клиент не ответил на запрос, возвращается Pending.
func (c *Client) Query(ctx context.Context, correlationID string) (entities.PaymentEvent, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return entities.PaymentEvent{}, err
	}

	password, timestamp := c.password()
	body := stkQueryRequest{
		BusinessShortCode: c.cfg.ShortCode,
		Password:          password,
		Timestamp:         timestamp,
		CheckoutRequestID: correlationID,
	}

	var resp stkQueryResponse
	err = gateway.DoJSON(ctx, c.http, http.MethodPost, c.url("/mpesa/stkpushquery/v1/query"), bearer(token), body, &resp)
	if err != nil {
		if apiErr, ok := apiError(err); ok && apiErr.ErrorCode == queryPendingCode {
			return entities.PaymentEvent{CorrelationID: correlationID, Pending: true, Reason: apiErr.ErrorMessage}, nil
		}
		return entities.PaymentEvent{}, describe(err)
	}

	ev := entities.PaymentEvent{
		CorrelationID: correlationID,
		ResultCode:    resp.ResultCode,
		Reason:        resp.ResultDesc,
	}
	if resp.ResultCode == "0" {
		ev.Success = true
		ev.PaidAt = c.now()
	}
	return ev, nil
}

func (c *Client) password() (string, string) {
	timestamp := c.now().In(eat).Format(timestampLayout)
	raw := c.cfg.ShortCode + c.cfg.Passkey + timestamp
	return base64.StdEncoding.EncodeToString([]byte(raw)), timestamp
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   string `json:"expires_in"`
}

// accessToken возвращает закэшированный OAuth токен. Одновременные обновления схлопываются в один запрос.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	if token, ok := c.cachedToken(); ok {
		return token, nil
	}

	v, err, _ := c.tokenGroup.Do("token", func() (any, error) {
		if token, ok := c.cachedToken(); ok {
			return token, nil
		}
		return c.fetchToken(ctx)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (c *Client) cachedToken() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token != "" && c.now().Before(c.tokenExpiry) {
		return c.token, true
	}
	return "", false
}

func (c *Client) fetchToken(ctx context.Context) (string, error) {
	header := http.Header{}
	header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(c.cfg.ConsumerKey+":"+c.cfg.ConsumerSecret)))

	var resp tokenResponse
	if err := gateway.DoJSON(ctx, c.http, http.MethodGet, c.url("/oauth/v1/generate?grant_type=client_credentials"), header, nil, &resp); err != nil {
		return "", fmt.Errorf("failed to get access token: %w", describe(err))
	}
	if resp.AccessToken == "" {
		return "", errors.New("failed to get access token: empty token")
	}

	ttl := time.Hour
	if seconds, err := strconv.Atoi(resp.ExpiresIn); err == nil && seconds > 0 {
		ttl = time.Duration(seconds) * time.Second
	}

	c.mu.Lock()
	c.token = resp.AccessToken
	c.tokenExpiry = c.now().Add(ttl - tokenExpiryMargin)
	c.mu.Unlock()

	return resp.AccessToken, nil
}

func (c *Client) url(path string) string {
	return strings.TrimRight(c.cfg.BaseURL, "/") + path
}

func bearer(token string) http.Header {
	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)
	return header
}

func apiError(err error) (errorResponse, bool) {
	var statusErr *gateway.StatusError
	if !errors.As(err, &statusErr) {
		return errorResponse{}, false
	}
	var resp errorResponse
	if jsonErr := decodeJSON(statusErr.Body, &resp); jsonErr != nil || resp.ErrorCode == "" {
		return errorResponse{}, false
	}
	return resp, true
}

// describe заменяет сырое тело ответа на сообщение об ошибке Daraja, если его удалось разобрать.
func describe(err error) error {
	if apiErr, ok := apiError(err); ok {
		return fmt.Errorf("daraja error %s: %s", apiErr.ErrorCode, apiErr.ErrorMessage)
	}
	return err
}

// NormalizePhone приводит номер к формату 2547XXXXXXXX, который ожидает Daraja.
func NormalizePhone(phone string) (string, error) {
	p := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(strings.TrimSpace(phone))
	p = strings.TrimPrefix(p, "+")

	switch {
	case len(p) == 10 && strings.HasPrefix(p, "0"):
		p = "254" + p[1:]
	case len(p) == 9 && (strings.HasPrefix(p, "7") || strings.HasPrefix(p, "1")):
		p = "254" + p
	}

	if len(p) != 12 || !strings.HasPrefix(p, "254") {
		return "", fmt.Errorf("%w: unsupported phone number %q", entities.ErrInvalidInput, phone)
	}
	for _, r := range p {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("%w: unsupported phone number %q", entities.ErrInvalidInput, phone)
		}
	}
	return p, nil
}
