package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"backoffice/internal/config"
	"backoffice/internal/logger"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

const (
	maxOpenConns    = 20
	maxIdleConns    = 5
	connMaxLifetime = 30 * time.Minute
	pingTimeout     = 5 * time.Second
)

// InitDB opens the PostgreSQL pool and exits the process when it is unreachable.
func InitDB(cfg *config.Config) *sql.DB {
	database, err := NewDatabase(cfg)
	if err != nil {
		logger.L().Fatal("database unavailable", zap.String("host", cfg.DBHost), zap.Error(err))
	}

	logger.L().Info("database connection established", zap.String("host", cfg.DBHost), zap.String("name", cfg.DBName))
	return database
}

func NewDatabase(cfg *config.Config) (*sql.DB, error) {
	return open("postgres", buildDSN(cfg))
}

func open(driver, dsn string) (*sql.DB, error) {
	database, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}
	database.SetMaxOpenConns(maxOpenConns)
	database.SetMaxIdleConns(maxIdleConns)
	database.SetConnMaxLifetime(connMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err = database.PingContext(ctx); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	return database, nil
}

func buildDSN(cfg *config.Config) string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)
}
