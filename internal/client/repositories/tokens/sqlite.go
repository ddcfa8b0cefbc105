package tokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/coursestore/internal/common"
	"github.com/dmitrijs2005/coursestore/internal/dbx"
)

// SQLiteRepository stores the session token in a key/value metadata table.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a repository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// InitDatabase opens the local sqlite database at dsn and ensures the
// metadata schema exists.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS metadata (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`)
	if err != nil {
		return nil, fmt.Errorf("failed to init metadata schema: %w", err)
	}
	return db, nil
}

func (r *SQLiteRepository) Get(ctx context.Context) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM metadata WHERE key = ?`, common.SessionTokenKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get session token: %w", err)
	}
	return value, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, token string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, common.SessionTokenKey, token)
	if err != nil {
		return fmt.Errorf("failed to set session token: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM metadata WHERE key = ?`, common.SessionTokenKey)
	if err != nil {
		return fmt.Errorf("failed to clear session token: %w", err)
	}
	return nil
}
