package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dmarins/rently/internal/http/dashboard"
	"github.com/dmarins/rently/internal/http/lease"
	"github.com/dmarins/rently/internal/http/owner"
	"github.com/dmarins/rently/internal/http/payment"
	"github.com/dmarins/rently/internal/http/property"
	"github.com/dmarins/rently/internal/http/tenant"
	"github.com/dmarins/rently/internal/http/webhook"
)

func New(
	owners *owner.Handler,
	properties *property.Handler,
	tenants *tenant.Handler,
	leases *lease.Handler,
	payments *payment.Handler,
	dashboards *dashboard.Handler,
	webhooks *webhook.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api", func(r chi.Router) {
		r.Route("/owners", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			owners.Routes(r)
		})

		r.Route("/properties", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			properties.Routes(r)
		})

		r.Route("/tenants", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			tenants.Routes(r)
		})

		r.Route("/leases", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			leases.Routes(r)
		})

		r.Route("/payments", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			payments.Routes(r)
		})

		r.Route("/dashboard", dashboards.Routes)

		r.Route("/webhooks", webhooks.Routes)
	})

	return router
}
