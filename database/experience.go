package database

import (
	"context"
	"database/sql"

	"careerportal-api/models"
)

const insertExperienceQuery = `
	INSERT INTO experience (user_id, company, position, start_date, end_date, is_current)
	VALUES (?, ?, ?, ?, ?, ?)
`

func (c *Connection) InsertExperience(ctx context.Context, e *models.Experience) (int64, error) {
	var userID sql.NullInt64
	if e.UserID != nil {
		userID = sql.NullInt64{Int64: int64(*e.UserID), Valid: true}
	}

	isCurrent := 0
	if e.IsCurrent {
		isCurrent = 1
	}

	return c.insert(ctx, "experience", insertExperienceQuery,
		userID, e.Company, e.Position, nullString(e.StartDate), nullString(e.EndDate), isCurrent)
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
