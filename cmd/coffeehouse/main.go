package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/coffeffe/coffeehouse/internal/config"
	"github.com/coffeffe/coffeehouse/internal/database"
	"github.com/coffeffe/coffeehouse/internal/database/repository"
	"github.com/coffeffe/coffeehouse/internal/linkout"
	"github.com/coffeffe/coffeehouse/internal/service"
	"github.com/coffeffe/coffeehouse/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	if err := database.RunMigrations(cfg.Database.Path, "internal/database/migrations"); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	// repositories
	orderRepo := repository.NewOrderRepo(db)

	// services
	checkout := &service.CheckoutService{Orders: orderRepo, TaxRate: cfg.Pricing.TaxRate}
	maintenance := &service.MaintenanceService{DB: db}

	p := tea.NewProgram(tui.New(ctx, cfg,
		tui.Repos{Orders: orderRepo},
		tui.Services{Checkout: checkout, Maintenance: maintenance},
		linkout.Opener{},
	), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
