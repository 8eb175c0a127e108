package mpesa

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront/internal/entities"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const successCallback = `{
  "Body": {
    "stkCallback": {
      "MerchantRequestID": "29115-34620561-1",
      "CheckoutRequestID": "ws_CO_191220191020363925",
      "ResultCode": 0,
      "ResultDesc": "The service request is processed successfully.",
      "CallbackMetadata": {
        "Item": [
          {"Name": "Amount", "Value": 990.00},
          {"Name": "MpesaReceiptNumber", "Value": "NLJ7RT61SV"},
          {"Name": "TransactionDate", "Value": 20191219102115},
          {"Name": "PhoneNumber", "Value": 254708374149}
        ]
      }
    }
  }
}`

const cancelledCallback = `{
  "Body": {
    "stkCallback": {
      "MerchantRequestID": "29115-34620561-1",
      "CheckoutRequestID": "ws_CO_191220191020363925",
      "ResultCode": 1032,
      "ResultDesc": "Request cancelled by user"
    }
  }
}`

func TestClient_ParseEvent(t *testing.T) {
	c := New(slog.New(slog.NewTextHandler(io.Discard, nil)), Config{CallbackSecret: "s"}, http.DefaultClient)

	t.Run("success", func(t *testing.T) {
		ev, err := c.ParseEvent([]byte(successCallback))
		require.NoError(t, err)

		assert.Equal(t, "ws_CO_191220191020363925", ev.CorrelationID)
		assert.True(t, ev.Success)
		assert.Equal(t, "0", ev.ResultCode)
		assert.Equal(t, "NLJ7RT61SV", ev.Reference)
		assert.True(t, decimal.NewFromInt(990).Equal(ev.Amount))
		// 10:21:15 EAT
		assert.Equal(t, time.Date(2019, 12, 19, 7, 21, 15, 0, time.UTC), ev.PaidAt)
	})

	t.Run("cancelled", func(t *testing.T) {
		ev, err := c.ParseEvent([]byte(cancelledCallback))
		require.NoError(t, err)

		assert.False(t, ev.Success)
		assert.Equal(t, "1032", ev.ResultCode)
		assert.Equal(t, "Request cancelled by user", ev.Reason)
		assert.True(t, ev.PaidAt.IsZero())
	})

	invalid := []struct {
		name string
		body string
	}{
		{name: "not json", body: `<xml/>`},
		{name: "no callback", body: `{"Body":{}}`},
		{name: "no checkout id", body: `{"Body":{"stkCallback":{"ResultCode":0}}}`},
		{name: "no result code", body: `{"Body":{"stkCallback":{"CheckoutRequestID":"ws_CO_1"}}}`},
		{name: "bad date", body: `{"Body":{"stkCallback":{"CheckoutRequestID":"ws_CO_1","ResultCode":0,"CallbackMetadata":{"Item":[{"Name":"TransactionDate","Value":"today"}]}}}}`},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			_, err := c.ParseEvent([]byte(tc.body))
			assert.ErrorIs(t, err, entities.ErrInvalidPayload)
		})
	}
}
