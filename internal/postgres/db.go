package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	cfg.MaxConns = 8
	cfg.MinConns = 1
	cfg.HealthCheckPeriod = 30 * time.Second
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// EnsureSchema creates the storefront tables if they do not exist yet.
// Good enough for the demo deployment; a real rollout would migrate.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS accounts (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		joined_at     TIMESTAMPTZ NOT NULL
	);
	CREATE TABLE IF NOT EXISTS orders (
		id             TEXT PRIMARY KEY,
		number         TEXT NOT NULL,
		user_id        TEXT NOT NULL DEFAULT '',
		status         TEXT NOT NULL,
		subtotal       DOUBLE PRECISION NOT NULL,
		discount       DOUBLE PRECISION NOT NULL,
		shipping       DOUBLE PRECISION NOT NULL,
		total          DOUBLE PRECISION NOT NULL,
		coupon_code    TEXT NOT NULL DEFAULT '',
		payment_method TEXT NOT NULL,
		address        JSONB NOT NULL,
		placed_at      TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id, placed_at DESC);
	CREATE TABLE IF NOT EXISTS order_items (
		id         TEXT PRIMARY KEY,
		order_id   TEXT NOT NULL REFERENCES orders(id),
		product_id TEXT NOT NULL,
		name       TEXT NOT NULL,
		qty        INT NOT NULL,
		unit_price DOUBLE PRECISION NOT NULL
	);`
	_, err := pool.Exec(ctx, ddl)
	return err
}
