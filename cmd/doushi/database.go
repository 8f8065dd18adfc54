package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/benkyo/doushi-api/internal/config"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx database/sql driver
)

// openDatabase opens and verifies the PostgreSQL connection used by the
// database-backed commands.
func openDatabase(cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}
