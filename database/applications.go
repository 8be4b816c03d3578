package database

import (
	"context"
	"fmt"

	"careerportal-api/models"
)

const listApplicationsQuery = `
	SELECT a.application_id, j.job_role, u.name, a.applied_at, a.status
	FROM applications a
	JOIN users u ON a.user_id = u.user_id
	JOIN jobs j ON a.job_id = j.job_id
	ORDER BY a.applied_at DESC
`

const updateApplicationStatusQuery = `UPDATE applications SET status = ? WHERE application_id = ?`

func (c *Connection) ListApplications(ctx context.Context) ([]models.Application, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := c.db.QueryContext(ctx, listApplicationsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query applications: %w", err)
	}
	defer rows.Close()

	applications := []models.Application{}
	for rows.Next() {
		var a models.Application
		if err := rows.Scan(&a.ID, &a.JobRole, &a.ApplicantName, &a.SubmissionDate, &a.Status); err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		applications = append(applications, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate applications: %w", err)
	}

	return applications, nil
}

// UpdateApplicationStatus reports false when no application has that id.
func (c *Connection) UpdateApplicationStatus(ctx context.Context, id int64, status string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	result, err := c.db.ExecContext(ctx, updateApplicationStatusQuery, status, id)
	if err != nil {
		return false, fmt.Errorf("failed to update application %d: %w", id, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return rows > 0, nil
}
