package models

import (
	"encoding/json"
	"fmt"
)

// PaymentRequest is the payment form body. Field order matters: validation
// reports the first failing field in declaration order.
type PaymentRequest struct {
	FullName   string `json:"fullName" validate:"required"`
	Email      string `json:"email" validate:"required,payment_email"`
	Phone      string `json:"phone" validate:"required,phone9"`
	CardName   string `json:"cardName" validate:"required"`
	CardNumber string `json:"cardNumber" validate:"required,card16"`
	CVV        string `json:"cvv" validate:"required,cvv3"`
}

// UnmarshalJSON reads only the exact, case sensitive form keys. A key in any
// other casing is treated as absent.
func (p *PaymentRequest) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	fields := []struct {
		key string
		dst *string
	}{
		{"fullName", &p.FullName},
		{"email", &p.Email},
		{"phone", &p.Phone},
		{"cardName", &p.CardName},
		{"cardNumber", &p.CardNumber},
		{"cvv", &p.CVV},
	}
	for _, f := range fields {
		value, ok := raw[f.key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(value, f.dst); err != nil {
			return fmt.Errorf("field %s: %w", f.key, err)
		}
	}
	return nil
}

type PaymentResponse struct {
	Message   string `json:"message"`
	PaymentID int64  `json:"paymentId"`
}
