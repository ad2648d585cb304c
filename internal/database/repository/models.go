package repository

import "time"

// Order represents a recorded finalized order row — the record a kitchen
// consumer reads. Rows are append-only; the app never updates them.
type Order struct {
	ID           string
	CustomerName string
	Drinks       string // item names joined with ", "
	TotalCents   int64
	CreatedAt    time.Time
}
