package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func ConnectPostgres(ctx context.Context, dsn string, log *zap.Logger) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	log.Info("connected to PostgreSQL")

	if err := initSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	log.Info("schema initialized")

	return pool, nil
}

// initSchema creates the tables on first run. Everything is idempotent.
func initSchema(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS household_users (
			id UUID PRIMARY KEY,
			email VARCHAR(255) UNIQUE NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS profiles (
			person VARCHAR(32) PRIMARY KEY,
			weight_kg DOUBLE PRECISION NOT NULL,
			height_cm DOUBLE PRECISION NOT NULL,
			age_years INT NOT NULL,
			sex VARCHAR(16) NOT NULL,
			weekly_sport_minutes DOUBLE PRECISION NOT NULL DEFAULT 0,
			deficit_kcal DOUBLE PRECISION NOT NULL DEFAULT 0,
			option_galettes BOOLEAN NOT NULL DEFAULT FALSE,
			option_cheese_grams DOUBLE PRECISION NOT NULL DEFAULT 0,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS meal_schedule (
			day VARCHAR(16) NOT NULL,
			meal VARCHAR(16) NOT NULL,
			axel BOOLEAN NOT NULL DEFAULT FALSE,
			prisca BOOLEAN NOT NULL DEFAULT FALSE,
			PRIMARY KEY (day, meal)
		)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
