package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/coffeffe/coffeehouse/internal/database"
)

// MaintenanceService houses destructive/ops actions surfaced through the TUI.
type MaintenanceService struct {
	DB *sql.DB
}

// ClearOrders wipes the recorded order log. The schema stays intact so the
// app keeps running.
func (s *MaintenanceService) ClearOrders(ctx context.Context) error {
	if s.DB == nil {
		return fmt.Errorf("maintenance: db not configured")
	}
	if err := database.WithTx(s.DB, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM orders"); err != nil {
			return fmt.Errorf("clear orders: %w", err)
		}
		return nil
	}); err != nil {
		return err
	}
	_, _ = s.DB.ExecContext(ctx, "VACUUM")
	return nil
}
