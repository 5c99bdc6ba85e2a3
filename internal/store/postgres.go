package store

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// PostgresKV is the shared-database backend for server deployments
// where interaction state must outlive a single host.
type PostgresKV struct {
	db *sql.DB
}

// NewPostgresKV wraps an already-migrated postgres connection.
// The caller runs goose migrations before handing the db over
// (see cmd/server).
func NewPostgresKV(db *sql.DB) *PostgresKV {
	return &PostgresKV{db: db}
}

func (p *PostgresKV) Get(key string) (string, bool, error) {
	var value string
	err := p.db.QueryRow("SELECT value FROM kv_store WHERE key = $1", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading key %s: %w", key, err)
	}
	return value, true, nil
}

func (p *PostgresKV) Set(key, value string) error {
	_, err := p.db.Exec(`
		INSERT INTO kv_store (key, value, updated_at) VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`, key, value)
	if err != nil {
		return fmt.Errorf("writing key %s: %w", key, err)
	}
	return nil
}

func (p *PostgresKV) Prefix(prefix string) (map[string]string, error) {
	rows, err := p.db.Query(
		"SELECT key, value FROM kv_store WHERE key LIKE $1 || '%'", prefix)
	if err != nil {
		return nil, fmt.Errorf("scanning prefix %s: %w", prefix, err)
	}
	defer func() { _ = rows.Close() }()

	out := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		out[k] = v
	}
	return out, rows.Err()
}

func (p *PostgresKV) DeletePrefix(prefix string) error {
	if _, err := p.db.Exec(
		"DELETE FROM kv_store WHERE key LIKE $1 || '%'", prefix); err != nil {
		return fmt.Errorf("deleting prefix %s: %w", prefix, err)
	}
	return nil
}

func (p *PostgresKV) Close() error {
	return p.db.Close()
}
