// Package store opens the configured vocabulary log backend.
package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jusunglee/hangulpad/internal/db"
	"github.com/jusunglee/hangulpad/internal/db/postgres"
	"github.com/jusunglee/hangulpad/internal/db/sqlite"
)

// Open connects to PostgreSQL for postgres:// URLs and treats anything else
// as a SQLite path.
func Open(ctx context.Context, databaseURL string) (db.Repository, error) {
	if db.IsPostgresURL(databaseURL) {
		repo, err := postgres.New(ctx, databaseURL)
		if err != nil {
			return nil, fmt.Errorf("opening postgres: %w", err)
		}
		slog.DebugContext(ctx, "using postgres backend")
		return repo, nil
	}

	repo, err := sqlite.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite: %w", err)
	}
	slog.DebugContext(ctx, "using sqlite backend", "path", databaseURL)
	return repo, nil
}
