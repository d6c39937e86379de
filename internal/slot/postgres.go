package slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// slotSchema is applied once at startup. One row per slot key; the value
// column holds the serialized collection.
const slotSchema = `
CREATE TABLE IF NOT EXISTS agenda_slots (
	key        TEXT PRIMARY KEY,
	value      JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// PostgresSlot stores the value as a single row in a key-value table,
// upserted on every save. It lets several board instances share one
// persisted table where the file backend would not.
type PostgresSlot struct {
	pool *pgxpool.Pool
	key  string
}

// NewPostgresSlot ensures the slot table exists and returns a slot bound
// to the given key.
func NewPostgresSlot(ctx context.Context, pool *pgxpool.Pool, key string) (*PostgresSlot, error) {
	if _, err := pool.Exec(ctx, slotSchema); err != nil {
		return nil, fmt.Errorf("create slot table: %w", err)
	}
	return &PostgresSlot{pool: pool, key: key}, nil
}

// Load reads the slot contents. A key that has never been written
// returns nil data and no error.
func (s *PostgresSlot) Load(ctx context.Context) ([]byte, error) {
	var data []byte
	err := s.pool.QueryRow(ctx,
		`SELECT value FROM agenda_slots WHERE key = $1`, s.key,
	).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load slot %q: %w", s.key, err)
	}
	return data, nil
}

// Save upserts the slot contents.
func (s *PostgresSlot) Save(ctx context.Context, data []byte) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO agenda_slots (key, value, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		s.key, data,
	)
	if err != nil {
		return fmt.Errorf("save slot %q: %w", s.key, err)
	}
	return nil
}
