package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"careerportal-api/metrics"
	"careerportal-api/models"
	"careerportal-api/utils"
	"careerportal-api/validation"
)

const paymentForm = "payment"

type PaymentHandler struct {
	store PaymentStore
}

func NewPaymentHandler(store PaymentStore) (*PaymentHandler, error) {
	if store == nil {
		return nil, fmt.Errorf("payment store is required")
	}
	return &PaymentHandler{store: store}, nil
}

// ProcessPayment validates the payment form and stores it. Validation
// failures never reach the store.
func (h *PaymentHandler) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	var req models.PaymentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		logger.Warn().Err(err).Msg("invalid payment request body")
		metrics.ObserveSubmission(paymentForm, metrics.OutcomeRejected)
		utils.SendErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validation.ValidatePayment(&req); err != nil {
		var verr *validation.Error
		if !errors.As(err, &verr) {
			logger.Error().Err(err).Msg("payment validation failed unexpectedly")
			metrics.ObserveSubmission(paymentForm, metrics.OutcomeFailed)
			utils.SendErrorResponse(w, http.StatusInternalServerError, "Error processing payment")
			return
		}
		logger.Info().Str("rule", string(verr.Rule)).Msg("payment rejected")
		metrics.ObserveSubmission(paymentForm, metrics.OutcomeRejected)
		utils.SendErrorResponse(w, http.StatusBadRequest, verr.Message)
		return
	}

	paymentID, err := h.store.InsertPayment(r.Context(), &req)
	if err != nil {
		logger.Error().Err(err).
			Str("card", utils.MaskCardNumber(req.CardNumber)).
			Msg("error processing payment")
		metrics.ObserveSubmission(paymentForm, metrics.OutcomeFailed)
		utils.SendErrorResponse(w, http.StatusInternalServerError, "Error processing payment")
		return
	}

	logger.Info().Int64("payment_id", paymentID).
		Str("card", utils.MaskCardNumber(req.CardNumber)).
		Msg("payment stored")
	metrics.ObserveSubmission(paymentForm, metrics.OutcomeAccepted)
	utils.WriteJSON(w, http.StatusCreated, models.PaymentResponse{
		Message:   "Payment processed successfully!",
		PaymentID: paymentID,
	})
}
