package inventory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Count(ctx context.Context, name, colorName string) (int, error) {
	var count sql.NullInt64
	err := r.db.QueryRowContext(ctx, `
		SELECT SUM(quantity) FROM inventory
		WHERE item_name LIKE $1 AND item_name LIKE $2`,
		"%"+name+"%", "%"+colorName+"%").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count inventory: %w", err)
	}
	return int(count.Int64), nil
}

func (r *postgresRepo) MinThreshold(ctx context.Context, name, colorName string) (int, error) {
	var minQty int
	err := r.db.QueryRowContext(ctx, `
		SELECT min_quantity FROM inventory_mm
		WHERE item_name LIKE $1 AND item_name LIKE $2`,
		"%"+name+"%", "%"+colorName+"%").Scan(&minQty)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("minimum threshold: %w", err)
	}
	return minQty, nil
}
