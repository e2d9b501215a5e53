package color

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type postgresRegistry struct{ db *sql.DB }

func NewPostgresRegistry(db *sql.DB) Registry { return &postgresRegistry{db: db} }

func (r *postgresRegistry) Resolve(ctx context.Context, name string) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`SELECT color_id FROM colors WHERE name=$1`, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: %q", ErrColorNotFound, name)
	}
	if err != nil {
		return 0, fmt.Errorf("resolve color: %w", err)
	}
	return id, nil
}

func (r *postgresRegistry) Register(ctx context.Context, name, hexCode string) (int64, error) {
	var id int64
	// ON CONFLICT keeps seeding idempotent across restarts.
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO colors (name, hex_code) VALUES ($1,$2)
		ON CONFLICT (name) DO UPDATE SET hex_code=EXCLUDED.hex_code
		RETURNING color_id`, name, hexCode).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("register color: %w", err)
	}
	return id, nil
}

func (r *postgresRegistry) List(ctx context.Context) ([]*Color, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT color_id, name, hex_code, created_at FROM colors ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var colors []*Color
	for rows.Next() {
		c := &Color{}
		var hex sql.NullString
		if err := rows.Scan(&c.ID, &c.Name, &hex, &c.CreatedAt); err != nil {
			return nil, err
		}
		c.HexCode = hex.String
		colors = append(colors, c)
	}
	return colors, rows.Err()
}
