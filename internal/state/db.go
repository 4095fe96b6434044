// ./internal/state/db.go
package state

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/rs/zerolog/log"
)

// DB is a global database connection pool.
var DB *sql.DB

// DBConfig holds database connection parameters.
type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string // "disable", "require", "verify-full", etc.
}

// InitDB initializes the database connection pool.
func InitDB(cfg DBConfig) error {
	psqlInfo := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)

	var err error
	DB, err = sql.Open("postgres", psqlInfo)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}

	DB.SetMaxOpenConns(25)
	DB.SetMaxIdleConns(25)
	DB.SetConnMaxLifetime(5 * time.Minute)

	err = DB.Ping()
	if err != nil {
		DB.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info().Msg("Successfully connected to the PostgreSQL database!")
	return nil
}

// CloseDB closes the database connection pool.
func CloseDB() {
	if DB != nil {
		log.Info().Msg("Closing database connection...")
		if err := DB.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing database connection")
		}
	}
}

// EnsureSchema applies the necessary DDL to create tables if they don't exist.
func EnsureSchema() error {
	if DB == nil {
		return fmt.Errorf("database not initialized")
	}

	schemaSQL := `
		CREATE TABLE IF NOT EXISTS staking_constants (
			constants_id SERIAL PRIMARY KEY,
			version INTEGER NOT NULL DEFAULT 1,
			config_name VARCHAR(255) NOT NULL DEFAULT 'default',
			is_active BOOLEAN NOT NULL DEFAULT FALSE,
			activated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			hourly_roi DECIMAL(20, 10) NOT NULL,
			max_roi DECIMAL(10, 4) NOT NULL,
			commission_rate DECIMAL(10, 4) NOT NULL,
			min_deposit DECIMAL(20, 8) NOT NULL,
			max_deposit DECIMAL(20, 8) NOT NULL,
			max_deposits_per_user INTEGER NOT NULL,
			basis_points INTEGER NOT NULL,
			time_bonus_tiers JSONB NOT NULL,
			CONSTRAINT uq_staking_constants_config_version UNIQUE (config_name, version)
		);
		CREATE INDEX IF NOT EXISTS idx_staking_constants_config_active ON staking_constants(config_name, is_active, activated_at DESC);

		-- Raw amounts are stored as text exactly as received from the chain
		-- indexer and parsed on load; parsing never blocks ingestion.
		CREATE TABLE IF NOT EXISTS staking_events (
			event_id SERIAL PRIMARY KEY,
			address VARCHAR(255) NOT NULL,
			event_type VARCHAR(50) NOT NULL,
			raw_amount TEXT NOT NULL,
			event_timestamp BIGINT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_staking_events_address ON staking_events(address, event_timestamp);
		CREATE INDEX IF NOT EXISTS idx_staking_events_type ON staking_events(event_type);

		CREATE TABLE IF NOT EXISTS analysis_snapshots (
			snapshot_id SERIAL PRIMARY KEY,
			address VARCHAR(255) NOT NULL,
			score INTEGER NOT NULL,
			risk_score DECIMAL(10, 4) NOT NULL,
			effective_apy DECIMAL(10, 4) NOT NULL,
			analysis_timestamp BIGINT NOT NULL,
			result JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_analysis_snapshots_address ON analysis_snapshots(address, analysis_timestamp DESC);
	`
	_, err := DB.Exec(schemaSQL)
	if err != nil {
		return fmt.Errorf("failed to execute schema DDL: %w", err)
	}
	log.Info().Msg("Database schema ensured.")
	return nil
}

// TestDBConnection tests if the database connection is healthy
func TestDBConnection() error {
	if DB == nil {
		return fmt.Errorf("database connection is nil")
	}

	// Use a short timeout context for health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := DB.PingContext(ctx)
	if err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}
