// Package gateway содержит общие части клиентов платёжных провайдеров.
package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"github.com/SergeyBogomolovv/storefront/internal/entities"
)

// SignatureHeader - заголовок с hex HMAC-SHA256 тела вебхука.
const SignatureHeader = "X-Webhook-Signature"

// CallbackTokenParam - параметр callback URL с токеном для провайдеров, которые не подписывают запросы.
const CallbackTokenParam = "token"

// Signer подписывает и проверяет тела вебхуков общим секретом.
type Signer struct {
	secret []byte
}

func NewSigner(secret string) Signer {
	return Signer{secret: []byte(secret)}
}

func (s Signer) Sign(body []byte) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature сравнивает подписи за постоянное время. Пустой секрет никогда не проходит проверку.
func (s Signer) VerifySignature(body []byte, signature string) error {
	if len(s.secret) == 0 || signature == "" {
		return entities.ErrInvalidSignature
	}

	got, err := hex.DecodeString(strings.TrimSpace(signature))
	if err != nil {
		return entities.ErrInvalidSignature
	}

	mac := hmac.New(sha256.New, s.secret)
	mac.Write(body)
	if !hmac.Equal(got, mac.Sum(nil)) {
		return entities.ErrInvalidSignature
	}
	return nil
}

// CallbackToken выводится из секрета, сам секрет в URL не попадает.
func (s Signer) CallbackToken() string {
	return s.Sign([]byte("callback"))
}

func (s Signer) VerifyCallbackToken(token string) error {
	if len(s.secret) == 0 || token == "" {
		return entities.ErrInvalidSignature
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(s.CallbackToken())) != 1 {
		return entities.ErrInvalidSignature
	}
	return nil
}
