package utils

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"careerportal-api/models"
)

func WriteJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Warn().Err(err).Int("status", status).Msg("failed to write response body")
	}
}

func SendErrorResponse(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, models.ErrorResponse{Error: message})
}
