package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/jusunglee/hangulpad/internal/db"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

const memoryPath = ":memory:"

// querier is the part of *sql.DB and *sql.Tx the queries need.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Repository implements db.Repository using SQLite
type Repository struct {
	db *sql.DB
	q  querier
}

// New opens (and if needed creates) the SQLite database at dbPath.
func New(ctx context.Context, dbPath string) (*Repository, error) {
	// Strip sqlite:// prefix if present
	dbPath = strings.TrimPrefix(dbPath, "sqlite://")

	isNew := dbPath == memoryPath
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		isNew = true
	}

	sqliteDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening SQLite database: %w", err)
	}
	// Every connection to :memory: is a separate database.
	if dbPath == memoryPath {
		sqliteDB.SetMaxOpenConns(1)
	}

	if _, err := sqliteDB.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		sqliteDB.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if _, err := sqliteDB.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		sqliteDB.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	if _, err := sqliteDB.ExecContext(ctx, schemaSQL); err != nil {
		sqliteDB.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	if isNew {
		slog.Info("created new SQLite database", "path", dbPath)
	}

	return &Repository{db: sqliteDB, q: sqliteDB}, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) WithTx(ctx context.Context, fn func(repo db.Repository) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(&Repository{db: r.db, q: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction error: %w, rollback error: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

const entryColumns = `id, word, description, created_at, updated_at`

func (r *Repository) ListEntries(ctx context.Context) ([]db.Entry, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT `+entryColumns+`
		FROM entries
		ORDER BY word
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []db.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *Repository) GetEntry(ctx context.Context, word string) (db.Entry, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT `+entryColumns+`
		FROM entries
		WHERE word = ?
	`, word)
	return scanEntry(row)
}

func (r *Repository) UpsertEntry(ctx context.Context, arg db.UpsertEntryParams) (db.Entry, error) {
	row := r.q.QueryRowContext(ctx, `
		INSERT INTO entries (word, description)
		VALUES (?, ?)
		ON CONFLICT (word) DO UPDATE SET
			description = excluded.description,
			updated_at = strftime('%Y-%m-%dT%H:%M:%SZ', 'now')
		RETURNING `+entryColumns,
		arg.Word, arg.Description)
	return scanEntry(row)
}

func (r *Repository) DeleteEntry(ctx context.Context, word string) (int64, error) {
	result, err := r.q.ExecContext(ctx, `DELETE FROM entries WHERE word = ?`, word)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (db.Entry, error) {
	var e db.Entry
	var createdAtStr, updatedAtStr string
	err := row.Scan(&e.ID, &e.Word, &e.Description, &createdAtStr, &updatedAtStr)
	if err == sql.ErrNoRows {
		return db.Entry{}, db.ErrEntryNotFound
	}
	if err != nil {
		return db.Entry{}, err
	}
	e.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
	e.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAtStr)
	return e, nil
}
