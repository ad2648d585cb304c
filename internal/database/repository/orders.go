package repository

import (
	"context"
	"database/sql"
	"time"
)

// OrderRepo handles the order log.
type OrderRepo struct {
	db *sql.DB
}

func NewOrderRepo(db *sql.DB) *OrderRepo { return &OrderRepo{db: db} }

// Record appends a finalized order. The checkout flow calls this at most
// once per session and does not read the row back.
func (r *OrderRepo) Record(ctx context.Context, o Order) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO orders(id, customer_name, drinks, total_cents, created_at)
	VALUES(?, ?, ?, ?, ?);
	`, o.ID, o.CustomerName, o.Drinks, o.TotalCents, o.CreatedAt)
	return err
}

// List returns recorded orders, newest first.
func (r *OrderRepo) List(ctx context.Context) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, customer_name, drinks, total_cents, created_at FROM orders ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.CustomerName, &o.Drinks, &o.TotalCents, &o.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *OrderRepo) Get(ctx context.Context, id string) (*Order, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, customer_name, drinks, total_cents, created_at FROM orders WHERE id = ?`, id)
	var o Order
	if err := row.Scan(&o.ID, &o.CustomerName, &o.Drinks, &o.TotalCents, &o.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

// CountSince returns how many orders were recorded at or after the cutoff.
// The orders view uses it for the day's tally.
func (r *OrderRepo) CountSince(ctx context.Context, cutoff time.Time) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders WHERE created_at >= ?`, cutoff).Scan(&n)
	return n, err
}
