package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// EnsureSchema creates the tables the bot needs when they do not exist yet.
// Mirrors the behavior of running migrations on startup for a single-node
// deployment; there is no versioning because the schema is tiny.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGINT PRIMARY KEY,
			username TEXT NOT NULL DEFAULT '',
			first_name TEXT NOT NULL DEFAULT '',
			last_name TEXT NOT NULL DEFAULT '',
			language TEXT NOT NULL DEFAULT 'en',
			created_on TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS cars (
			id BIGSERIAL PRIMARY KEY,
			brand TEXT NOT NULL,
			model TEXT NOT NULL,
			year INT NOT NULL,
			category TEXT NOT NULL,
			day_rate_clp BIGINT NOT NULL,
			available BOOLEAN NOT NULL DEFAULT true,
			image_url TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			created_on TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS bookings (
			id BIGSERIAL PRIMARY KEY,
			ref UUID NOT NULL UNIQUE,
			requester_id BIGINT NOT NULL,
			username TEXT NOT NULL DEFAULT '',
			car_id BIGINT NOT NULL REFERENCES cars (id),
			start_date DATE NOT NULL,
			end_date DATE NOT NULL,
			days INT NOT NULL,
			day_rate_clp BIGINT NOT NULL,
			discount_percent INT NOT NULL,
			total_centavos BIGINT NOT NULL,
			contact_info TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'SUBMITTED',
			created_on TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS reviews (
			id BIGSERIAL PRIMARY KEY,
			requester_id BIGINT NOT NULL,
			username TEXT NOT NULL DEFAULT '',
			rating INT NOT NULL CHECK (rating BETWEEN 1 AND 4),
			comment TEXT NOT NULL DEFAULT '',
			created_on TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_bookings_requester ON bookings (requester_id)`,
		`CREATE INDEX IF NOT EXISTS idx_cars_category ON cars (category)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}
