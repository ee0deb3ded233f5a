package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/srgjo27/scalable_field/internal/platform/logger"
)

type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// NewPostgresDB opens a connection and waits for the database to come up,
// which keeps container start order from mattering.
func NewPostgresDB(cfg Config, log *logger.Logger) (*sql.DB, error) {
	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName)

	var db *sql.DB
	var err error
	maxRetries := 10

	for i := 1; i <= maxRetries; i++ {
		log.Infow("connecting to database", "attempt", i, "max", maxRetries)
		db, err = sql.Open("postgres", connStr)
		if err == nil {
			err = db.Ping()
		}

		if err == nil {
			log.Infow("database connected")
			return db, nil
		}

		log.Warnw("database not ready, retrying", "error", err)
		time.Sleep(2 * time.Second)
	}

	return nil, fmt.Errorf("failed to connect to database: %w", err)
}
