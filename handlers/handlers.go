package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"careerportal-api/models"
)

const maxBodyBytes = 1 << 20

type PaymentStore interface {
	InsertPayment(ctx context.Context, p *models.PaymentRequest) (int64, error)
}

type ResumeStore interface {
	InsertResume(ctx context.Context, r *models.Resume) (int64, error)
	InsertResumeUser(ctx context.Context, u *models.ResumeUser) (int64, error)
	InsertExperience(ctx context.Context, e *models.Experience) (int64, error)
}

type ApplicationStore interface {
	ListApplications(ctx context.Context) ([]models.Application, error)
	UpdateApplicationStatus(ctx context.Context, id int64, status string) (bool, error)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(v)
}
