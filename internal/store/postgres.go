package store

import (
	"context"
	"database/sql"
)

// pgStore keeps every collection as one row in kv_store. Reads and writes
// move the whole value; there is no record-level locking, last writer wins.
type pgStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) Store {
	return &pgStore{db: db}
}

func (p *pgStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := p.db.QueryRowContext(ctx,
		`SELECT value FROM kv_store WHERE key = $1`, key,
	).Scan(&value)

	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	return value, true, nil
}

func (p *pgStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`, key, value)
	return err
}

func (p *pgStore) Delete(ctx context.Context, key string) error {
	_, err := p.db.ExecContext(ctx,
		`DELETE FROM kv_store WHERE key = $1`, key,
	)
	return err
}
