package models

import "encoding/json"

// Resume keeps experience, education and skills as raw JSON; they are
// stored verbatim (compacted) in JSON columns.
type Resume struct {
	FirstName  string          `json:"firstName"`
	LastName   string          `json:"lastName"`
	Address    string          `json:"address"`
	JobTitle   string          `json:"jobTitle"`
	LinkedinID string          `json:"linkedinId"`
	Experience json.RawMessage `json:"experience"`
	Education  json.RawMessage `json:"education"`
	Skills     json.RawMessage `json:"skills"`
}

type ResumeResponse struct {
	Message  string `json:"message"`
	ResumeID int64  `json:"resumeId"`
}

// ResumeUser is the contact profile captured by the resume builder.
type ResumeUser struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Address    string `json:"address"`
	JobTitle   string `json:"jobTitle"`
	LinkedinID string `json:"linkedinId"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
}

type ResumeUserResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}
