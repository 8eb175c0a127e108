package gateway

import (
	"testing"

	"github.com/SergeyBogomolovv/storefront/internal/entities"
	"github.com/stretchr/testify/assert"
)

func TestSigner_VerifySignature(t *testing.T) {
	body := []byte(`{"event":"charge.success"}`)
	signer := NewSigner("secret")

	testCases := []struct {
		name      string
		signer    Signer
		body      []byte
		signature string
		wantErr   error
	}{
		{
			name:      "valid signature",
			signer:    signer,
			body:      body,
			signature: signer.Sign(body),
		},
		{
			name:      "missing signature",
			signer:    signer,
			body:      body,
			signature: "",
			wantErr:   entities.ErrInvalidSignature,
		},
		{
			name:      "not hex",
			signer:    signer,
			body:      body,
			signature: "zz",
			wantErr:   entities.ErrInvalidSignature,
		},
		{
			name:      "body tampered",
			signer:    signer,
			body:      []byte(`{"event":"charge.failed"}`),
			signature: signer.Sign(body),
			wantErr:   entities.ErrInvalidSignature,
		},
		{
			name:      "other secret",
			signer:    NewSigner("other"),
			body:      body,
			signature: signer.Sign(body),
			wantErr:   entities.ErrInvalidSignature,
		},
		{
			name:      "empty secret never verifies",
			signer:    NewSigner(""),
			body:      body,
			signature: NewSigner("").Sign(body),
			wantErr:   entities.ErrInvalidSignature,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.signer.VerifySignature(tc.body, tc.signature)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSigner_CallbackToken(t *testing.T) {
	signer := NewSigner("secret")
	token := signer.CallbackToken()

	assert.NotContains(t, token, "secret")
	assert.NoError(t, signer.VerifyCallbackToken(token))
	assert.ErrorIs(t, signer.VerifyCallbackToken(""), entities.ErrInvalidSignature)
	assert.ErrorIs(t, signer.VerifyCallbackToken(NewSigner("other").CallbackToken()), entities.ErrInvalidSignature)
	assert.ErrorIs(t, NewSigner("").VerifyCallbackToken(NewSigner("").CallbackToken()), entities.ErrInvalidSignature)
}
