package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmarins/rently/internal/dashboard"
	"github.com/dmarins/rently/internal/http/respond"
)

type Handler struct {
	svc *dashboard.Service
}

func NewHandler(svc *dashboard.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/stats", h.stats)
}

type statsResponse struct {
	TotalProperties        int   `json:"total_properties"`
	TotalTenants           int   `json:"total_tenants"`
	ActiveLeases           int   `json:"active_leases"`
	PendingPaymentsAmount  int64 `json:"pending_payments_amount"`
	ReceivedPaymentsAmount int64 `json:"received_payments_amount"`
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		respond.Internal(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, statsResponse{
		TotalProperties:        stats.TotalProperties,
		TotalTenants:           stats.TotalTenants,
		ActiveLeases:           stats.ActiveLeases,
		PendingPaymentsAmount:  stats.PendingPaymentsAmount,
		ReceivedPaymentsAmount: stats.ReceivedPaymentsAmount,
	})
}
