package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
)

// ErrEntryNotFound is returned by GetEntry when no entry has the word.
var ErrEntryNotFound = errors.New("entry not found")

// IsNotFound reports whether err means a word has no stored entry, whichever
// driver produced it.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrEntryNotFound) ||
		errors.Is(err, sql.ErrNoRows) ||
		errors.Is(err, pgx.ErrNoRows)
}

// Entry is one stored vocabulary line. Word is the displayed Hangul text.
type Entry struct {
	ID          int64
	Word        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type UpsertEntryParams struct {
	Word        string
	Description string
}

// Repository defines the storage operations used by the vocabulary log.
// Both the PostgreSQL and SQLite implementations satisfy it.
type Repository interface {
	ListEntries(ctx context.Context) ([]Entry, error)
	GetEntry(ctx context.Context, word string) (Entry, error)
	// UpsertEntry inserts word or replaces its description.
	UpsertEntry(ctx context.Context, arg UpsertEntryParams) (Entry, error)
	DeleteEntry(ctx context.Context, word string) (int64, error)

	// Transaction support
	WithTx(ctx context.Context, fn func(repo Repository) error) error

	// Lifecycle
	Close() error
}
