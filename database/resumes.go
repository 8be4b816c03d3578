package database

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"careerportal-api/models"
)

const insertResumeQuery = `
	INSERT INTO resumes (first_name, last_name, address, job_title, linkedin_id, experience, education, skills)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`

const insertResumeUserQuery = `
	INSERT INTO resumeUser (first_name, last_name, address, job_title, linkedin_id, phone, email)
	VALUES (?, ?, ?, ?, ?, ?, ?)
`

func (c *Connection) InsertResume(ctx context.Context, r *models.Resume) (int64, error) {
	experience, err := jsonColumn(r.Experience)
	if err != nil {
		return 0, fmt.Errorf("invalid experience: %w", err)
	}
	education, err := jsonColumn(r.Education)
	if err != nil {
		return 0, fmt.Errorf("invalid education: %w", err)
	}
	skills, err := jsonColumn(r.Skills)
	if err != nil {
		return 0, fmt.Errorf("invalid skills: %w", err)
	}

	return c.insert(ctx, "resume", insertResumeQuery,
		r.FirstName, r.LastName, r.Address, r.JobTitle, r.LinkedinID,
		experience, education, skills)
}

func (c *Connection) InsertResumeUser(ctx context.Context, u *models.ResumeUser) (int64, error) {
	return c.insert(ctx, "resume user", insertResumeUserQuery,
		u.FirstName, u.LastName, u.Address, u.JobTitle, u.LinkedinID, u.Phone, u.Email)
}

// jsonColumn compacts raw JSON for storage. Absent values are stored as NULL.
func jsonColumn(raw json.RawMessage) (interface{}, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return nil, err
	}
	return buf.String(), nil
}
