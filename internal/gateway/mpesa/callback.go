package mpesa

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/storefront/internal/entities"
	"github.com/shopspring/decimal"
)

type callbackEnvelope struct {
	Body struct {
		StkCallback *stkCallback `json:"stkCallback"`
	} `json:"Body"`
}

type stkCallback struct {
	MerchantRequestID string `json:"MerchantRequestID"`
	CheckoutRequestID string `json:"CheckoutRequestID"`
	ResultCode        *int   `json:"ResultCode"`
	ResultDesc        string `json:"ResultDesc"`
	CallbackMetadata  *struct {
		Item []metadataItem `json:"Item"`
	} `json:"CallbackMetadata"`
}

type metadataItem struct {
	Name  string          `json:"Name"`
	Value json.RawMessage `json:"Value"`
}

// ParseEvent разбирает тело STK callback. Подпись должна быть проверена до вызова.
func (c *Client) ParseEvent(body []byte) (entities.PaymentEvent, error) {
	var env callbackEnvelope
	if err := decodeJSON(body, &env); err != nil {
		return entities.PaymentEvent{}, fmt.Errorf("%w: %v", entities.ErrInvalidPayload, err)
	}

	cb := env.Body.StkCallback
	if cb == nil || cb.CheckoutRequestID == "" || cb.ResultCode == nil {
		return entities.PaymentEvent{}, fmt.Errorf("%w: missing stkCallback fields", entities.ErrInvalidPayload)
	}

	ev := entities.PaymentEvent{
		CorrelationID: cb.CheckoutRequestID,
		Success:       *cb.ResultCode == 0,
		ResultCode:    strconv.Itoa(*cb.ResultCode),
		Reason:        cb.ResultDesc,
	}

	if cb.CallbackMetadata == nil {
		return ev, nil
	}

	for _, item := range cb.CallbackMetadata.Item {
		raw := strings.Trim(string(item.Value), `"`)
		switch item.Name {
		case "Amount":
			amount, err := decimal.NewFromString(raw)
			if err != nil {
				return entities.PaymentEvent{}, fmt.Errorf("%w: bad Amount %q", entities.ErrInvalidPayload, raw)
			}
			ev.Amount = amount
		case "MpesaReceiptNumber":
			ev.Reference = raw
		case "TransactionDate":
			paidAt, err := time.ParseInLocation(timestampLayout, raw, eat)
			if err != nil {
				return entities.PaymentEvent{}, fmt.Errorf("%w: bad TransactionDate %q", entities.ErrInvalidPayload, raw)
			}
			ev.PaidAt = paidAt.UTC()
		}
	}

	return ev, nil
}

func decodeJSON(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}
