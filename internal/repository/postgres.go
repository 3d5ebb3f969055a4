package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"spaceai/internal/model"
)

// PostgresRepository handles database operations
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(dsn string, maxConn, maxIdleConn int) (*PostgresRepository, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{db: db}, nil
}

// Close closes the database connection
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

// LoadListings returns the full fallback corpus from the listings
// table. It replaces the embedded seed data when a database is
// configured.
func (r *PostgresRepository) LoadListings(ctx context.Context) ([]model.Listing, error) {
	query := `
		SELECT
			id, title, location, price, mood, colors, vibe, features,
			bedrooms, bathrooms, square_footage, property_type,
			address, state_code, url
		FROM listings
		ORDER BY id
	`
	var listings []model.Listing
	if err := r.db.SelectContext(ctx, &listings, query); err != nil {
		return nil, fmt.Errorf("failed to load listings: %w", err)
	}
	return listings, nil
}

// LogSearch logs one fallback search for diagnostics.
func (r *PostgresRepository) LogSearch(ctx context.Context, query string, c *model.Constraints, resultCount, tookMs int) error {
	constraintsJSON, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode constraints: %w", err)
	}

	logQuery := `
		INSERT INTO search_logs (query, constraints, result_count, response_time_ms)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := r.db.ExecContext(ctx, logQuery, query, constraintsJSON, resultCount, tookMs); err != nil {
		return fmt.Errorf("failed to log search: %w", err)
	}
	return nil
}
