package handlers

import (
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/rs/zerolog"

	"careerportal-api/metrics"
	"careerportal-api/models"
	"careerportal-api/utils"
)

const (
	resumeSessionName = "resume-session"
	sessionUserIDKey  = "user_id"
)

// ResumeHandler serves the resume builder. The builder saves the contact
// profile first; its id is kept in a cookie session so later experience
// entries can be attached to it without the client echoing it back.
type ResumeHandler struct {
	store    ResumeStore
	sessions sessions.Store
}

func NewResumeHandler(store ResumeStore, sessionStore sessions.Store) (*ResumeHandler, error) {
	if store == nil {
		return nil, fmt.Errorf("resume store is required")
	}
	if sessionStore == nil {
		return nil, fmt.Errorf("session store is required")
	}
	return &ResumeHandler{store: store, sessions: sessionStore}, nil
}

func (h *ResumeHandler) SaveResume(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	var resume models.Resume
	if err := decodeJSON(w, r, &resume); err != nil {
		logger.Warn().Err(err).Msg("invalid resume request body")
		metrics.ObserveSubmission("resume", metrics.OutcomeRejected)
		utils.SendErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resumeID, err := h.store.InsertResume(r.Context(), &resume)
	if err != nil {
		logger.Error().Err(err).Msg("error saving resume data")
		metrics.ObserveSubmission("resume", metrics.OutcomeFailed)
		utils.SendErrorResponse(w, http.StatusInternalServerError, "Error saving resume data")
		return
	}

	metrics.ObserveSubmission("resume", metrics.OutcomeAccepted)
	utils.WriteJSON(w, http.StatusCreated, models.ResumeResponse{
		Message:  "Resume saved successfully!",
		ResumeID: resumeID,
	})
}

func (h *ResumeHandler) SaveResumeUser(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	var user models.ResumeUser
	if err := decodeJSON(w, r, &user); err != nil {
		logger.Warn().Err(err).Msg("invalid resume builder request body")
		metrics.ObserveSubmission("resume_user", metrics.OutcomeRejected)
		utils.SendErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID, err := h.store.InsertResumeUser(r.Context(), &user)
	if err != nil {
		logger.Error().Err(err).Msg("error saving user data")
		metrics.ObserveSubmission("resume_user", metrics.OutcomeFailed)
		utils.SendErrorResponse(w, http.StatusInternalServerError, "Error saving user data")
		return
	}

	// A stale or tampered cookie yields a fresh session alongside the error.
	session, err := h.sessions.Get(r, resumeSessionName)
	if err != nil {
		logger.Debug().Err(err).Msg("discarding unreadable resume session")
	}
	session.Values[sessionUserIDKey] = userID
	if err := session.Save(r, w); err != nil {
		logger.Warn().Err(err).Int64("user_id", userID).Msg("error saving resume session")
	}

	metrics.ObserveSubmission("resume_user", metrics.OutcomeAccepted)
	utils.WriteJSON(w, http.StatusOK, models.ResumeUserResponse{
		Message: "User data saved successfully",
		UserID:  userID,
	})
}

func (h *ResumeHandler) SaveExperience(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	var experience models.Experience
	if err := decodeJSON(w, r, &experience); err != nil {
		logger.Warn().Err(err).Msg("invalid experience request body")
		metrics.ObserveSubmission("experience", metrics.OutcomeRejected)
		utils.SendErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if experience.UserID == nil {
		experience.UserID = h.sessionUserID(r)
	}

	experienceID, err := h.store.InsertExperience(r.Context(), &experience)
	if err != nil {
		logger.Error().Err(err).Msg("error saving experience data")
		metrics.ObserveSubmission("experience", metrics.OutcomeFailed)
		utils.SendErrorResponse(w, http.StatusInternalServerError, "Error saving experience data")
		return
	}

	metrics.ObserveSubmission("experience", metrics.OutcomeAccepted)
	utils.WriteJSON(w, http.StatusOK, models.ExperienceResponse{
		Message:      "Experience data saved successfully",
		ExperienceID: experienceID,
	})
}

func (h *ResumeHandler) sessionUserID(r *http.Request) *models.OptionalID {
	session, err := h.sessions.Get(r, resumeSessionName)
	if err != nil {
		return nil
	}
	id, ok := session.Values[sessionUserIDKey].(int64)
	if !ok {
		return nil
	}
	userID := models.OptionalID(id)
	return &userID
}
