package prefstore

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Postgres keeps preferences in a single key/value table. Useful when the
// service runs behind more than one instance and file state is not an
// option.
type Postgres struct {
	DB *sql.DB
}

func OpenPostgres(dsn string) (*Postgres, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)
	return &Postgres{DB: db}, nil
}

func (s *Postgres) Ping(ctx context.Context) error { return s.DB.PingContext(ctx) }

func (s *Postgres) Migrate(ctx context.Context) error {
	_, err := s.DB.ExecContext(ctx, `
        CREATE TABLE IF NOT EXISTS preferences (
            key        TEXT PRIMARY KEY,
            value      JSONB NOT NULL,
            updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
        );`)
	return err
}

func (s *Postgres) Read(ctx context.Context, key string) ([]byte, bool) {
	var raw []byte
	err := s.DB.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key=$1`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false
	}
	if err != nil {
		log.Printf("[WARN] prefstore pg read %s: %v", key, err)
		return nil, false
	}
	return raw, true
}

func (s *Postgres) Write(ctx context.Context, key string, raw []byte) error {
	_, err := s.DB.ExecContext(ctx, `
        INSERT INTO preferences (key, value) VALUES ($1, $2)
        ON CONFLICT (key) DO UPDATE SET value=EXCLUDED.value, updated_at=now()`,
		key, string(raw))
	return err
}

func (s *Postgres) Remove(ctx context.Context, key string) error {
	_, err := s.DB.ExecContext(ctx, `DELETE FROM preferences WHERE key=$1`, key)
	return err
}
