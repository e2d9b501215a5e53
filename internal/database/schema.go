package database

import (
	"context"
	"database/sql"
	"fmt"
)

// statements create every table the backend needs. All are idempotent so
// startup can run them unconditionally.
var statements = []string{
	`CREATE TABLE IF NOT EXISTS colors (
		color_id   BIGSERIAL PRIMARY KEY,
		name       TEXT NOT NULL UNIQUE,
		hex_code   TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS cut_list (
		cut_id     BIGSERIAL PRIMARY KEY,
		part_name  TEXT NOT NULL,
		file_path  TEXT NOT NULL,
		color_id   BIGINT NOT NULL REFERENCES colors(color_id),
		quantity   INTEGER NOT NULL CHECK (quantity > 0),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (part_name, file_path, color_id)
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		order_id   BIGINT PRIMARY KEY,
		order_data JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS inventory (
		item_id   BIGSERIAL PRIMARY KEY,
		item_name TEXT NOT NULL,
		quantity  INTEGER NOT NULL DEFAULT 0,
		location  TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS inventory_mm (
		product_id   BIGSERIAL PRIMARY KEY,
		item_name    TEXT NOT NULL,
		color        TEXT NOT NULL,
		min_quantity INTEGER NOT NULL,
		max_quantity INTEGER NOT NULL
	)`,
}

// EnsureSchema creates any missing tables.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
