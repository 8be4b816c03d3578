package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerportal-api/models"
)

const validPaymentBody = `{
	"fullName": "Jane Doe",
	"email": "jane@example.com",
	"phone": "123456789",
	"cardName": "Jane Doe",
	"cardNumber": "1234567890123456",
	"cvv": "123"
}`

func postPayment(t *testing.T, h *PaymentHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/payment", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ProcessPayment(rr, req)
	return rr
}

func TestNewPaymentHandlerRequiresStore(t *testing.T) {
	_, err := NewPaymentHandler(nil)
	assert.Error(t, err)
}

func TestProcessPaymentStoresValidSubmission(t *testing.T) {
	store := newFakeStore()
	h, err := NewPaymentHandler(store)
	require.NoError(t, err)

	rr := postPayment(t, h, validPaymentBody)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"message":"Payment processed successfully!","paymentId":1}`, rr.Body.String())
	require.Len(t, store.payments, 1)
	assert.Equal(t, models.PaymentRequest{
		FullName:   "Jane Doe",
		Email:      "jane@example.com",
		Phone:      "123456789",
		CardName:   "Jane Doe",
		CardNumber: "1234567890123456",
		CVV:        "123",
	}, store.payments[0])
}

func TestProcessPaymentIsNotIdempotent(t *testing.T) {
	store := newFakeStore()
	h, err := NewPaymentHandler(store)
	require.NoError(t, err)

	first := postPayment(t, h, validPaymentBody)
	second := postPayment(t, h, validPaymentBody)

	var a, b models.PaymentResponse
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &a))
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &b))
	assert.NotEqual(t, a.PaymentID, b.PaymentID)
	assert.Len(t, store.payments, 2)
}

func TestProcessPaymentRejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"missing cvv", `{"fullName":"Jane","email":"jane@example.com","phone":"123456789","cardName":"Jane","cardNumber":"1234567890123456"}`, "All fields are required"},
		{"empty body object", `{}`, "All fields are required"},
		{"bad email", `{"fullName":"Jane","email":"a@b","phone":"123456789","cardName":"Jane","cardNumber":"1234567890123456","cvv":"123"}`, "Invalid email format"},
		{"short phone", `{"fullName":"Jane","email":"jane@example.com","phone":"12345","cardName":"Jane","cardNumber":"1234567890123456","cvv":"123"}`, "Phone number must be exactly 9 digits"},
		{"bad card", `{"fullName":"Jane","email":"jane@example.com","phone":"123456789","cardName":"Jane","cardNumber":"1234","cvv":"123"}`, "Card number must be exactly 16 digits"},
		{"bad cvv", `{"fullName":"Jane","email":"jane@example.com","phone":"123456789","cardName":"Jane","cardNumber":"1234567890123456","cvv":"12a"}`, "CVV must be exactly 3 digits"},
		{"upper-cased keys", `{"FULLNAME":"Jane","EMAIL":"jane@example.com","PHONE":"123456789","CARDNAME":"Jane","CARDNUMBER":"1234567890123456","CVV":"123"}`, "All fields are required"},
		{"null cvv", `{"fullName":"Jane","email":"jane@example.com","phone":"123456789","cardName":"Jane","cardNumber":"1234567890123456","cvv":null}`, "All fields are required"},
		{"not json", `fullName=Jane`, "Invalid request body"},
		{"array body", `["Jane"]`, "Invalid request body"},
		{"numeric phone", `{"fullName":"Jane","email":"jane@example.com","phone":123456789,"cardName":"Jane","cardNumber":"1234567890123456","cvv":"123"}`, "Invalid request body"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeStore()
			h, err := NewPaymentHandler(store)
			require.NoError(t, err)

			rr := postPayment(t, h, tc.body)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.JSONEq(t, `{"error":"`+tc.want+`"}`, rr.Body.String())
			assert.Empty(t, store.payments)
		})
	}
}

func TestProcessPaymentStorageFailure(t *testing.T) {
	store := newFakeStore()
	store.err = errStorage
	h, err := NewPaymentHandler(store)
	require.NoError(t, err)

	rr := postPayment(t, h, validPaymentBody)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"Error processing payment"}`, rr.Body.String())
	assert.NotContains(t, rr.Body.String(), "3306")
}
