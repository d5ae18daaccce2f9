package database

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Connect opens the connection pool and verifies it with a ping.
func Connect(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return pool, nil
}

// Migrate applies the schema. Statements are idempotent so the server
// can run them on every start.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	migrations := []string{
		// Bin numbers come from a dedicated sequence so a number is
		// never reused even after the bin that held it is deleted.
		`CREATE SEQUENCE IF NOT EXISTS bin_number_seq START 1`,

		`CREATE TABLE IF NOT EXISTS bins (
			id UUID PRIMARY KEY,
			bin_number TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			address TEXT NOT NULL,
			latitude DOUBLE PRECISION,
			longitude DOUBLE PRECISION,
			hours TEXT NOT NULL,
			type TEXT NOT NULL CHECK(type IN ('Indoor', 'Outdoor')),
			drive_up BOOLEAN NOT NULL DEFAULT FALSE,
			notes TEXT,
			distance TEXT,
			status TEXT NOT NULL DEFAULT 'active' CHECK(status IN ('active', 'inactive', 'maintenance')),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS drivers (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT UNIQUE,
			phone TEXT,
			license_number TEXT,
			status TEXT NOT NULL DEFAULT 'active' CHECK(status IN ('active', 'inactive')),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS pickups (
			id UUID PRIMARY KEY,
			bin_id UUID NOT NULL REFERENCES bins(id) ON DELETE CASCADE,
			driver_id UUID REFERENCES drivers(id) ON DELETE SET NULL,
			pickup_date DATE NOT NULL,
			pickup_time TEXT,
			load_type TEXT CHECK(load_type IN ('high_quality', 'medium_quality', 'low_quality', 'mixed')),
			load_weight DECIMAL(10,2),
			status TEXT NOT NULL DEFAULT 'scheduled' CHECK(status IN ('scheduled', 'in_progress', 'completed', 'cancelled')),
			completed_at TIMESTAMPTZ,
			notes TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE INDEX IF NOT EXISTS idx_bins_status ON bins(status)`,
		`CREATE INDEX IF NOT EXISTS idx_bins_bin_number ON bins(bin_number)`,
		`CREATE INDEX IF NOT EXISTS idx_drivers_email ON drivers(email)`,
		`CREATE INDEX IF NOT EXISTS idx_pickups_bin_id ON pickups(bin_id)`,
		`CREATE INDEX IF NOT EXISTS idx_pickups_driver_id ON pickups(driver_id)`,
		`CREATE INDEX IF NOT EXISTS idx_pickups_status ON pickups(status)`,
		`CREATE INDEX IF NOT EXISTS idx_pickups_pickup_date ON pickups(pickup_date)`,
	}

	for _, migration := range migrations {
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	log.Println("Database migrations completed")
	return nil
}
