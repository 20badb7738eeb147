// Package webhook receives billing provider event callbacks. Events are
// acknowledged and logged; reconciliation stays a manual settlement step.
package webhook

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmarins/rently/internal/http/respond"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/billing", h.billing)
}

type billingEvent struct {
	Event   string `json:"event"`
	Payment struct {
		ID           string `json:"id"`
		Subscription string `json:"subscription"`
		Status       string `json:"status"`
	} `json:"payment"`
}

func (h *Handler) billing(w http.ResponseWriter, r *http.Request) {
	var event billingEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid event payload")
		return
	}

	slog.Info("billing event received",
		"event", event.Event,
		"provider_payment_id", event.Payment.ID,
		"subscription_id", event.Payment.Subscription,
		"provider_status", event.Payment.Status)

	respond.JSON(w, http.StatusOK, map[string]bool{"received": true})
}
