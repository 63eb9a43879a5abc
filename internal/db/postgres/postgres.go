package postgres

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jusunglee/hangulpad/internal/db"
)

//go:embed schema.sql
var schemaSQL string

// querier is the part of *pgxpool.Pool and pgx.Tx the queries need.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository implements db.Repository using PostgreSQL via pgx
type Repository struct {
	pool *pgxpool.Pool
	q    querier
}

// New connects to databaseURL and makes sure the entries table exists.
func New(ctx context.Context, databaseURL string) (*Repository, error) {
	pool, err := db.NewPool(ctx, databaseURL)
	if err != nil {
		return nil, err
	}

	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return &Repository{pool: pool, q: pool}, nil
}

func (r *Repository) Close() error {
	r.pool.Close()
	return nil
}

func (r *Repository) WithTx(ctx context.Context, fn func(repo db.Repository) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	// recover() rolls back the tx (releasing the db connection), then re-panics.
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback(ctx)
			panic(p)
		}
	}()

	err = fn(&Repository{pool: r.pool, q: tx})
	if err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("transaction error: %w, rollback error: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

type entryRow struct {
	ID          int64              `db:"id"`
	Word        string             `db:"word"`
	Description string             `db:"description"`
	CreatedAt   pgtype.Timestamptz `db:"created_at"`
	UpdatedAt   pgtype.Timestamptz `db:"updated_at"`
}

const entryColumns = `id, word, description, created_at, updated_at`

func (r *Repository) ListEntries(ctx context.Context) ([]db.Entry, error) {
	rows, err := r.q.Query(ctx, `SELECT `+entryColumns+` FROM entries ORDER BY word COLLATE "C"`)
	if err != nil {
		return nil, err
	}
	results, err := pgx.CollectRows(rows, pgx.RowToStructByName[entryRow])
	if err != nil {
		return nil, err
	}
	return convertEntries(results), nil
}

func (r *Repository) GetEntry(ctx context.Context, word string) (db.Entry, error) {
	rows, err := r.q.Query(ctx, `SELECT `+entryColumns+` FROM entries WHERE word = $1`, word)
	if err != nil {
		return db.Entry{}, err
	}
	return collectEntry(rows)
}

func (r *Repository) UpsertEntry(ctx context.Context, arg db.UpsertEntryParams) (db.Entry, error) {
	rows, err := r.q.Query(ctx, `
		INSERT INTO entries (word, description)
		VALUES ($1, $2)
		ON CONFLICT (word) DO UPDATE SET
			description = EXCLUDED.description,
			updated_at = now()
		RETURNING `+entryColumns,
		arg.Word, arg.Description)
	if err != nil {
		return db.Entry{}, err
	}
	return collectEntry(rows)
}

func (r *Repository) DeleteEntry(ctx context.Context, word string) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM entries WHERE word = $1`, word)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func collectEntry(rows pgx.Rows) (db.Entry, error) {
	result, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[entryRow])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return db.Entry{}, db.ErrEntryNotFound
		}
		return db.Entry{}, err
	}
	return convertEntry(result), nil
}

func convertEntry(e entryRow) db.Entry {
	return db.Entry{
		ID:          e.ID,
		Word:        e.Word,
		Description: e.Description,
		CreatedAt:   e.CreatedAt.Time,
		UpdatedAt:   e.UpdatedAt.Time,
	}
}

func convertEntries(entries []entryRow) []db.Entry {
	result := make([]db.Entry, len(entries))
	for i, e := range entries {
		result[i] = convertEntry(e)
	}
	return result
}
