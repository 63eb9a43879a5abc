package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/jusunglee/hangulpad/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRepo connects to HANGULPAD_TEST_POSTGRES_URL and starts from an
// empty table. Tests are skipped when it is unset.
func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	url := os.Getenv("HANGULPAD_TEST_POSTGRES_URL")
	if url == "" {
		t.Skip("HANGULPAD_TEST_POSTGRES_URL not set")
	}
	ctx := context.Background()
	repo, err := New(ctx, url)
	require.NoError(t, err)
	_, err = repo.pool.Exec(ctx, `TRUNCATE entries`)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestEntryCRUD(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	e, err := repo.UpsertEntry(ctx, db.UpsertEntryParams{Word: "사람", Description: "person"})
	require.NoError(t, err)
	assert.Equal(t, "person", e.Description)

	updated, err := repo.UpsertEntry(ctx, db.UpsertEntryParams{Word: "사람", Description: "human"})
	require.NoError(t, err)
	assert.Equal(t, e.ID, updated.ID)

	entries, err := repo.ListEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "human", entries[0].Description)

	n, err := repo.DeleteEntry(ctx, "사람")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = repo.GetEntry(ctx, "사람")
	assert.True(t, db.IsNotFound(err))
}

func TestWithTxRollsBack(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	err := repo.WithTx(ctx, func(tx db.Repository) error {
		if _, err := tx.UpsertEntry(ctx, db.UpsertEntryParams{Word: "불", Description: "fire"}); err != nil {
			return err
		}
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)

	entries, err := repo.ListEntries(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
