package entities

import (
	"bytes"
	"encoding/gob"
	"strings"
	"time"
)

type DiscountCode struct {
	Code       string
	Percentage int
	ExpiresAt  time.Time
}

// Valid сообщает, действует ли код в момент now. Время сравнивается в UTC.
func (d DiscountCode) Valid(now time.Time) bool {
	return now.UTC().Before(d.ExpiresAt.UTC())
}

func NormalizeDiscountCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (d *DiscountCode) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (d *DiscountCode) Unmarshal(data []byte) error {
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(d); err != nil {
		return ErrInvalidInput
	}
	return nil
}
