package cutlist

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bullmose/cutlist-backend/internal/modules/color"
)

type postgresLedger struct{ db *sql.DB }

func NewPostgresLedger(db *sql.DB) Ledger { return &postgresLedger{db: db} }

func (l *postgresLedger) RecordOrder(ctx context.Context, orderID int64, payload []byte) (bool, error) {
	// ON CONFLICT DO NOTHING closes the check-then-act race: a retried or
	// duplicated submission affects zero rows.
	res, err := l.db.ExecContext(ctx, `
		INSERT INTO orders (order_id, order_data) VALUES ($1,$2)
		ON CONFLICT (order_id) DO NOTHING`, orderID, payload)
	if err != nil {
		return false, fmt.Errorf("record order %d: %w", orderID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (l *postgresLedger) Merge(ctx context.Context, d Delta) error {
	var colorID int64
	err := l.db.QueryRowContext(ctx,
		`SELECT color_id FROM colors WHERE name=$1`, d.Color).Scan(&colorID)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %q", color.ErrColorNotFound, d.Color)
	}
	if err != nil {
		return fmt.Errorf("resolve color for merge: %w", err)
	}

	// Single-statement upsert so concurrent merges on the same key
	// serialize inside the database rather than racing a read-then-write.
	_, err = l.db.ExecContext(ctx, `
		INSERT INTO cut_list (part_name, file_path, color_id, quantity)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (part_name, file_path, color_id)
		DO UPDATE SET quantity = cut_list.quantity + EXCLUDED.quantity,
		              updated_at = NOW()`,
		d.PartName, d.FilePath, colorID, d.Quantity)
	if err != nil {
		return fmt.Errorf("merge cut list entry: %w", err)
	}
	return nil
}

func (l *postgresLedger) Decrement(ctx context.Context, entryID int64, quantity int) error {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var current int
	err = tx.QueryRowContext(ctx,
		`SELECT quantity FROM cut_list WHERE cut_id=$1 FOR UPDATE`, entryID).Scan(&current)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: id %d", ErrEntryNotFound, entryID)
	}
	if err != nil {
		return fmt.Errorf("decrement cut list entry: %w", err)
	}

	remaining := current - quantity
	if remaining <= 0 {
		_, err = tx.ExecContext(ctx, `DELETE FROM cut_list WHERE cut_id=$1`, entryID)
	} else {
		_, err = tx.ExecContext(ctx,
			`UPDATE cut_list SET quantity=$1, updated_at=NOW() WHERE cut_id=$2`,
			remaining, entryID)
	}
	if err != nil {
		return fmt.Errorf("decrement cut list entry: %w", err)
	}
	return tx.Commit()
}

func (l *postgresLedger) List(ctx context.Context) ([]*Entry, error) {
	rows, err := l.db.QueryContext(ctx, `
		SELECT cl.cut_id, cl.part_name, cl.file_path, cl.color_id, c.name, cl.quantity, cl.updated_at
		FROM cut_list cl
		INNER JOIN colors c ON cl.color_id = c.color_id
		ORDER BY cl.part_name ASC, c.name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var entries []*Entry
	for rows.Next() {
		e := &Entry{}
		if err := rows.Scan(&e.ID, &e.PartName, &e.FilePath, &e.ColorID, &e.Color,
			&e.Quantity, &e.UpdatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
