package models

import "time"

type Application struct {
	ID             int64     `json:"id"`
	JobRole        string    `json:"jobRole"`
	ApplicantName  string    `json:"applicantName"`
	SubmissionDate time.Time `json:"submissionDate"`
	Status         string    `json:"status"`
}

type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required,max=50"`
}
