package metadata

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophdocs/internal/common"
	"github.com/dmitrijs2005/gophdocs/internal/dbx"
)

const (
	loadSessionQuery = `SELECT key, value FROM metadata WHERE key IN (?, ?)`
	upsertPairQuery  = `
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	clearQuery = `DELETE FROM metadata`
)

// SQLiteRepository keeps the Session as two rows of the metadata table, keyed
// by common.TokenStorageKey and common.UsernameStorageKey. It accepts either a
// *sql.DB or a *sql.Tx, so Save can join a surrounding transaction.
type SQLiteRepository struct {
	db dbx.DBTX
}

var _ Repository = (*SQLiteRepository)(nil)

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Load(ctx context.Context) (Session, error) {
	rows, err := r.db.QueryContext(ctx, loadSessionQuery, common.TokenStorageKey, common.UsernameStorageKey)
	if err != nil {
		return Session{}, fmt.Errorf("failed to load session: %w", err)
	}
	defer rows.Close()

	var s Session
	for rows.Next() {
		var key string
		var value []byte
		if err := rows.Scan(&key, &value); err != nil {
			return Session{}, fmt.Errorf("failed to scan session row: %w", err)
		}
		switch key {
		case common.TokenStorageKey:
			s.Token = string(value)
		case common.UsernameStorageKey:
			s.Username = string(value)
		}
	}
	if err := rows.Err(); err != nil {
		return Session{}, fmt.Errorf("failed to iterate session rows: %w", err)
	}

	return s, nil
}

// Save writes both pairs. Callers that need them to land together run Save on
// a transaction.
func (r *SQLiteRepository) Save(ctx context.Context, s Session) error {
	pairs := [][2]string{
		{common.TokenStorageKey, s.Token},
		{common.UsernameStorageKey, s.Username},
	}
	for _, p := range pairs {
		if _, err := r.db.ExecContext(ctx, upsertPairQuery, p[0], []byte(p[1])); err != nil {
			return fmt.Errorf("failed to save session[%s]: %w", p[0], err)
		}
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, clearQuery); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
