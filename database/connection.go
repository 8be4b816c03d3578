package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
)

// queryTimeout bounds every single statement issued by this package.
const queryTimeout = 10 * time.Second

type DatabaseConfig struct {
	Host     string `env:"DB_HOST" env-default:"localhost:3306"`
	User     string `env:"DB_USER" env-default:"root"`
	Password string `env:"DB_PASSWORD"`
	DBName   string `env:"DB_NAME" env-default:"careerportal"`
}

// DSN renders the go-sql-driver connection string. ClientFoundRows makes
// UPDATE report matched rows, so an unchanged status still counts as found.
func (c DatabaseConfig) DSN() string {
	cfg := mysql.NewConfig()
	cfg.User = c.User
	cfg.Passwd = c.Password
	cfg.Net = "tcp"
	cfg.Addr = c.Host
	cfg.DBName = c.DBName
	cfg.ParseTime = true
	cfg.ClientFoundRows = true
	return cfg.FormatDSN()
}

type Connection struct {
	db *sql.DB
}

func NewConnection(config DatabaseConfig) (*Connection, error) {
	db, err := sql.Open("mysql", config.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	conn := &Connection{db: db}

	if err := conn.ensureConnection(); err != nil {
		db.Close()
		return nil, err
	}

	return conn, nil
}

// NewWithDB wraps an already opened handle without pinging it.
func NewWithDB(db *sql.DB) *Connection {
	return &Connection{db: db}
}

func (c *Connection) ensureConnection() error {
	var err error
	for retries := 0; retries < 3; retries++ {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = c.db.PingContext(ctx)
		cancel()

		if err == nil {
			return nil
		}

		log.Warn().Err(err).Int("attempt", retries+1).Msg("database ping failed")
		time.Sleep(time.Second * time.Duration(retries+1))
	}
	return fmt.Errorf("failed to establish database connection after 3 attempts: %w", err)
}

func (c *Connection) Close() error {
	return c.db.Close()
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

// insert runs a single INSERT and returns the AUTO_INCREMENT id it produced.
func (c *Connection) insert(ctx context.Context, what, query string, args ...interface{}) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	result, err := c.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to insert %s: %w", what, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read %s id: %w", what, err)
	}
	return id, nil
}
