package db

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{ErrEntryNotFound, true},
		{sql.ErrNoRows, true},
		{pgx.ErrNoRows, true},
		{fmt.Errorf("getting entry: %w", ErrEntryNotFound), true},
		{errors.New("boom"), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsNotFound(tt.err), "%v", tt.err)
	}
}

func TestIsPostgresURL(t *testing.T) {
	assert.True(t, IsPostgresURL("postgres://localhost/hangul"))
	assert.True(t, IsPostgresURL("postgresql://u:p@db:5432/hangul?sslmode=disable"))
	assert.False(t, IsPostgresURL("hangul-log.db"))
	assert.False(t, IsPostgresURL("sqlite://hangul-log.db"))
	assert.False(t, IsPostgresURL(":memory:"))
}
