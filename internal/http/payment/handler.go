package payment

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmarins/rently/internal/http/request"
	"github.com/dmarins/rently/internal/http/respond"
	"github.com/dmarins/rently/internal/payment"
)

type Handler struct {
	svc *payment.Service
}

func NewHandler(svc *payment.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.settle)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	var filter payment.ListFilter

	if raw := r.URL.Query().Get("status"); raw != "" {
		status := payment.Status(raw)

		switch status {
		case payment.StatusPending, payment.StatusReceived, payment.StatusOverdue:
		default:
			respond.Error(w, http.StatusBadRequest, "invalid status filter")
			return
		}

		filter.Status = &status
	}

	if raw := r.URL.Query().Get("lease_id"); raw != "" {
		leaseID, err := uuid.Parse(raw)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid lease_id filter")
			return
		}

		filter.LeaseID = &leaseID
	}

	payments, err := h.svc.List(r.Context(), filter)
	if err != nil {
		respond.Internal(w, err)
		return
	}

	resp := make([]paymentResponse, len(payments))
	for i, p := range payments {
		resp[i] = toResponse(p)
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, payment.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "payment not found")
			return
		}

		respond.Internal(w, err)

		return
	}

	respond.JSON(w, http.StatusOK, toResponse(p))
}

type settlePaymentRequest struct {
	AmountReceived int64   `json:"amount_received" validate:"min=0"`
	Method         string  `json:"method" validate:"omitempty,oneof=provider cash card transfer other"`
	Notes          *string `json:"notes"`
}

type settleResponse struct {
	Payment   paymentResponse  `json:"payment"`
	Remainder *paymentResponse `json:"remainder,omitempty"`
}

func (h *Handler) settle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req settlePaymentRequest
	if err := request.Decode(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.svc.Settle(r.Context(), id, payment.SettleParams{
		AmountReceived: req.AmountReceived,
		Method:         payment.Method(req.Method),
		Notes:          req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrNotFound):
			respond.Error(w, http.StatusNotFound, "payment not found")
		case errors.Is(err, payment.ErrAlreadySettled):
			respond.Error(w, http.StatusBadRequest, "payment already settled")
		default:
			respond.Internal(w, err)
		}

		return
	}

	resp := settleResponse{Payment: toResponse(result.Payment)}

	if result.Remainder != nil {
		remainder := toResponse(result.Remainder)
		resp.Remainder = &remainder
	}

	respond.JSON(w, http.StatusOK, resp)
}
