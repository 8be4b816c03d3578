package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentRequestReadsExactKeys(t *testing.T) {
	var p PaymentRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"fullName": "Jane Doe",
		"email": "jane@example.com",
		"phone": "123456789",
		"cardName": "J DOE",
		"cardNumber": "1234567890123456",
		"cvv": "123",
		"extra": true
	}`), &p))

	assert.Equal(t, PaymentRequest{
		FullName:   "Jane Doe",
		Email:      "jane@example.com",
		Phone:      "123456789",
		CardName:   "J DOE",
		CardNumber: "1234567890123456",
		CVV:        "123",
	}, p)
}

func TestPaymentRequestIgnoresOtherCasings(t *testing.T) {
	var p PaymentRequest
	require.NoError(t, json.Unmarshal([]byte(`{"FullName":"Jane","EMAIL":"jane@example.com","Cvv":"123","cvv":"456"}`), &p))

	assert.Empty(t, p.FullName)
	assert.Empty(t, p.Email)
	assert.Equal(t, "456", p.CVV)
}

func TestPaymentRequestRejectsNonStringFields(t *testing.T) {
	var p PaymentRequest
	err := json.Unmarshal([]byte(`{"phone": 123456789}`), &p)
	assert.ErrorContains(t, err, "phone")
}
