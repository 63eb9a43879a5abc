package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jusunglee/hangulpad/internal/db"
	"github.com/jusunglee/hangulpad/internal/db/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSQLitePath(t *testing.T) {
	ctx := context.Background()
	repo, err := Open(ctx, filepath.Join(t.TempDir(), "log.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	assert.IsType(t, &sqlite.Repository{}, repo)
	_, err = repo.UpsertEntry(ctx, db.UpsertEntryParams{Word: "눈", Description: "eye; snow"})
	require.NoError(t, err)
}

func TestOpenBadPostgresURL(t *testing.T) {
	_, err := Open(context.Background(), "postgres://%zz")
	assert.ErrorContains(t, err, "opening postgres")
}
