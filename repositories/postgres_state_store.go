package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresStateStore struct {
	db *pgxpool.Pool
}

func NewPostgresStateStore(db *pgxpool.Pool) *PostgresStateStore {
	return &PostgresStateStore{db: db}
}

func (s *PostgresStateStore) Get(ctx context.Context, sessionID, key string, dest interface{}) (bool, error) {
	query := `SELECT value FROM visitor_state WHERE session_id = $1 AND key = $2`

	var raw []byte
	err := s.db.QueryRow(ctx, query, sessionID, key).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(raw, dest)
}

func (s *PostgresStateStore) Set(ctx context.Context, sessionID, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO visitor_state (session_id, key, value, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (session_id, key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`
	_, err = s.db.Exec(ctx, query, sessionID, key, raw)
	return err
}

func (s *PostgresStateStore) Delete(ctx context.Context, sessionID, key string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM visitor_state WHERE session_id = $1 AND key = $2`, sessionID, key)
	return err
}
