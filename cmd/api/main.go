package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/dmarins/rently/internal/billing"
	"github.com/dmarins/rently/internal/config"
	"github.com/dmarins/rently/internal/dashboard"
	dashboardStore "github.com/dmarins/rently/internal/dashboard/store"
	"github.com/dmarins/rently/internal/database"
	rentlyHttp "github.com/dmarins/rently/internal/http"
	dashboardHandler "github.com/dmarins/rently/internal/http/dashboard"
	leaseHandler "github.com/dmarins/rently/internal/http/lease"
	ownerHandler "github.com/dmarins/rently/internal/http/owner"
	paymentHandler "github.com/dmarins/rently/internal/http/payment"
	propertyHandler "github.com/dmarins/rently/internal/http/property"
	tenantHandler "github.com/dmarins/rently/internal/http/tenant"
	webhookHandler "github.com/dmarins/rently/internal/http/webhook"
	"github.com/dmarins/rently/internal/lease"
	leaseStore "github.com/dmarins/rently/internal/lease/store"
	"github.com/dmarins/rently/internal/owner"
	ownerStore "github.com/dmarins/rently/internal/owner/store"
	"github.com/dmarins/rently/internal/payment"
	paymentStore "github.com/dmarins/rently/internal/payment/store"
	"github.com/dmarins/rently/internal/property"
	propertyStore "github.com/dmarins/rently/internal/property/store"
	"github.com/dmarins/rently/internal/tenant"
	tenantStore "github.com/dmarins/rently/internal/tenant/store"
)

func main() {
	// A missing .env is fine; real deployments inject the environment.
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
		owners     = ownerStore.New(db)
		properties = propertyStore.New(db)
		tenants    = tenantStore.New(db)
		leases     = leaseStore.New(db)
		payments   = paymentStore.New(db)
		dashboards = dashboardStore.New(db)
	)

	billingClient := billing.NewClient(billing.Config{
		BaseURL: cfg.Billing.BaseURL,
		APIKey:  cfg.Billing.APIKey,
		Timeout: cfg.Billing.Timeout,
	})
	provisioner := billing.NewProvisioner(billingClient, owners, tenants, cfg.Billing.SplitPercent)

	var (
		ownerService     = owner.NewService(owners)
		propertyService  = property.NewService(properties)
		tenantService    = tenant.NewService(tenants)
		leaseService     = lease.NewService(leases, properties, tenants, provisioner)
		paymentService   = payment.NewService(payments)
		dashboardService = dashboard.NewService(dashboards)
	)

	var (
		ownerH     = ownerHandler.NewHandler(ownerService)
		propertyH  = propertyHandler.NewHandler(propertyService)
		tenantH    = tenantHandler.NewHandler(tenantService)
		leaseH     = leaseHandler.NewHandler(leaseService)
		paymentH   = paymentHandler.NewHandler(paymentService)
		dashboardH = dashboardHandler.NewHandler(dashboardService)
		webhookH   = webhookHandler.NewHandler()
	)

	router := rentlyHttp.New(ownerH, propertyH, tenantH, leaseH, paymentH, dashboardH, webhookH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
