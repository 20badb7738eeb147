// Command seed loads a small sample portfolio through the regular service
// layer, so seeded rows take the exact same path as API writes.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/dmarins/rently/internal/config"
	"github.com/dmarins/rently/internal/database"
	"github.com/dmarins/rently/internal/lease"
	leaseStore "github.com/dmarins/rently/internal/lease/store"
	"github.com/dmarins/rently/internal/owner"
	ownerStore "github.com/dmarins/rently/internal/owner/store"
	"github.com/dmarins/rently/internal/property"
	propertyStore "github.com/dmarins/rently/internal/property/store"
	"github.com/dmarins/rently/internal/tenant"
	tenantStore "github.com/dmarins/rently/internal/tenant/store"
)

// noBiller keeps seeding offline; origination logs the skip and moves on.
type noBiller struct{}

func (noBiller) SubscribeLease(_ context.Context, _ *lease.Lease, _ *property.Property, _ *tenant.Tenant) (string, error) {
	return "", errors.New("billing disabled while seeding")
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		ownerService    = owner.NewService(ownerStore.New(db))
		propertyService = property.NewService(propertyStore.New(db))
		tenantService   = tenant.NewService(tenantStore.New(db))
		leaseService    = lease.NewService(leaseStore.New(db), propertyStore.New(db), tenantStore.New(db), noBiller{})
	)

	ctx := context.Background()

	o, err := ownerService.Create(ctx, owner.CreateParams{
		Name:     "Adriana Silva",
		Email:    "adriana.silva@example.com",
		TaxID:    "123.456.789-00",
		Phone:    "+55 11 98765-4321",
		BankInfo: "Banco do Brasil, ag 1234, cc 56789-0",
		PixKey:   "adriana.silva@example.com",
	})
	if err != nil {
		slog.Error("failed to seed owner", "error", err)
		os.Exit(1)
	}

	p, err := propertyService.Create(ctx, property.CreateParams{
		Address:     "Av. Paulista, 1000, ap 42 - São Paulo, SP",
		Description: "Two-bedroom apartment, 70m², one parking spot",
		OwnerID:     o.ID,
	})
	if err != nil {
		slog.Error("failed to seed property", "error", err)
		os.Exit(1)
	}

	t, err := tenantService.Create(ctx, tenant.CreateParams{
		Name:  "João Souza",
		Email: "joao.souza@example.com",
		TaxID: "987.654.321-00",
		Phone: "+55 11 91234-5678",
	})
	if err != nil {
		slog.Error("failed to seed tenant", "error", err)
		os.Exit(1)
	}

	start := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

	l, err := leaseService.Create(ctx, lease.CreateParams{
		PropertyID:      p.ID,
		TenantID:        t.ID,
		Value:           250000,
		DueDay:          5,
		StartDate:       start,
		EndDate:         start.AddDate(2, 6, 0),
		AdjustmentIndex: lease.IndexIPCA,
		GuaranteeType:   lease.GuaranteeDeposit,
		GuaranteeAmount: 250000,
	})
	if err != nil {
		slog.Error("failed to seed lease", "error", err)
		os.Exit(1)
	}

	slog.Info("seed complete",
		"owner_id", o.ID,
		"property_id", p.ID,
		"tenant_id", t.ID,
		"lease_id", l.ID)
}
