package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"careerportal-api/middleware"
	"careerportal-api/models"
	"careerportal-api/utils"
	"careerportal-api/validation"
)

// ApplicationHandler backs the recruiter dashboard.
type ApplicationHandler struct {
	store ApplicationStore
}

func NewApplicationHandler(store ApplicationStore) (*ApplicationHandler, error) {
	if store == nil {
		return nil, fmt.Errorf("application store is required")
	}
	return &ApplicationHandler{store: store}, nil
}

func (h *ApplicationHandler) ListApplications(w http.ResponseWriter, r *http.Request) {
	applications, err := h.store.ListApplications(r.Context())
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("error fetching applications")
		utils.SendErrorResponse(w, http.StatusInternalServerError, "Error fetching applications")
		return
	}
	utils.WriteJSON(w, http.StatusOK, applications)
}

func (h *ApplicationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		utils.SendErrorResponse(w, http.StatusBadRequest, "Invalid application id")
		return
	}

	var req models.StatusUpdateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		logger.Warn().Err(err).Msg("invalid status update body")
		utils.SendErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validation.ValidateStatusUpdate(&req); err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			utils.SendErrorResponse(w, http.StatusBadRequest, verr.Message)
			return
		}
		logger.Error().Err(err).Msg("status validation failed unexpectedly")
		utils.SendErrorResponse(w, http.StatusInternalServerError, "Error updating application status")
		return
	}

	found, err := h.store.UpdateApplicationStatus(r.Context(), id, req.Status)
	if err != nil {
		logger.Error().Err(err).Int64("application_id", id).Msg("error updating application status")
		utils.SendErrorResponse(w, http.StatusInternalServerError, "Error updating application status")
		return
	}
	if !found {
		utils.SendErrorResponse(w, http.StatusNotFound, "Application not found")
		return
	}

	event := logger.Info().Int64("application_id", id).Str("status", req.Status)
	if claims := middleware.GetClaims(r.Context()); claims != nil {
		event = event.Str("updated_by", claims.Subject)
	}
	event.Msg("application status updated")
	utils.WriteJSON(w, http.StatusOK, models.MessageResponse{Message: "Application status updated successfully"})
}
