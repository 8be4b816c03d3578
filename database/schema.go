package database

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// schema lists the tables the API writes to, in dependency order. users and
// jobs are owned by the portal's account module; they are created here only
// so a fresh database can serve the recruiter dashboard.
var schema = []struct {
	table string
	ddl   string
}{
	{"payments", `CREATE TABLE IF NOT EXISTS payments (
		id INT AUTO_INCREMENT PRIMARY KEY,
		full_name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		phone CHAR(9) NOT NULL,
		card_name VARCHAR(255) NOT NULL,
		card_number CHAR(16) NOT NULL,
		cvv CHAR(3) NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`},
	{"resumes", `CREATE TABLE IF NOT EXISTS resumes (
		id INT AUTO_INCREMENT PRIMARY KEY,
		first_name VARCHAR(100),
		last_name VARCHAR(100),
		address VARCHAR(255),
		job_title VARCHAR(150),
		linkedin_id VARCHAR(255),
		experience JSON,
		education JSON,
		skills JSON,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`},
	{"resumeUser", `CREATE TABLE IF NOT EXISTS resumeUser (
		id INT AUTO_INCREMENT PRIMARY KEY,
		first_name VARCHAR(100),
		last_name VARCHAR(100),
		address VARCHAR(255),
		job_title VARCHAR(150),
		linkedin_id VARCHAR(255),
		phone VARCHAR(30),
		email VARCHAR(255)
	)`},
	{"experience", `CREATE TABLE IF NOT EXISTS experience (
		id INT AUTO_INCREMENT PRIMARY KEY,
		user_id INT NULL,
		company VARCHAR(255),
		position VARCHAR(255),
		start_date VARCHAR(20) NULL,
		end_date VARCHAR(20) NULL,
		is_current TINYINT(1) NOT NULL DEFAULT 0
	)`},
	{"users", `CREATE TABLE IF NOT EXISTS users (
		user_id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL
	)`},
	{"jobs", `CREATE TABLE IF NOT EXISTS jobs (
		job_id INT AUTO_INCREMENT PRIMARY KEY,
		job_role VARCHAR(255) NOT NULL
	)`},
	{"applications", `CREATE TABLE IF NOT EXISTS applications (
		application_id INT AUTO_INCREMENT PRIMARY KEY,
		user_id INT NOT NULL,
		job_id INT NOT NULL,
		applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		status VARCHAR(50) NOT NULL DEFAULT 'pending',
		FOREIGN KEY (user_id) REFERENCES users(user_id),
		FOREIGN KEY (job_id) REFERENCES jobs(job_id)
	)`},
}

// Migrate creates any missing table. Existing tables are left untouched.
func (c *Connection) Migrate(ctx context.Context) error {
	for _, s := range schema {
		stmtCtx, cancel := context.WithTimeout(ctx, queryTimeout)
		_, err := c.db.ExecContext(stmtCtx, s.ddl)
		cancel()
		if err != nil {
			return fmt.Errorf("failed to create table %s: %w", s.table, err)
		}
		log.Info().Str("table", s.table).Msg("table ready")
	}
	return nil
}
