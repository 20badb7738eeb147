package lease

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmarins/rently/internal/billing"
	"github.com/dmarins/rently/internal/http/request"
	"github.com/dmarins/rently/internal/http/respond"
	"github.com/dmarins/rently/internal/lease"
	"github.com/dmarins/rently/internal/property"
	"github.com/dmarins/rently/internal/tenant"
)

type Handler struct {
	svc *lease.Service
}

func NewHandler(svc *lease.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Post("/{id}/sync", h.sync)
	r.Delete("/{id}", h.delete)
}

type createLeaseRequest struct {
	PropertyID           uuid.UUID  `json:"property_id" validate:"required"`
	TenantID             uuid.UUID  `json:"tenant_id" validate:"required"`
	Value                int64      `json:"value" validate:"gt=0"`
	DueDay               int        `json:"due_day" validate:"min=1,max=31"`
	StartDate            time.Time  `json:"start_date" validate:"required"`
	EndDate              time.Time  `json:"end_date" validate:"required,gtfield=StartDate"`
	AdjustmentIndex      string     `json:"adjustment_index" validate:"required,oneof=IPCA IGPM INPC"`
	GuaranteeType        string     `json:"guarantee_type" validate:"required,oneof=DEPOSIT SURETY_INSURANCE GUARANTOR"`
	GuaranteeAmount      int64      `json:"guarantee_amount" validate:"min=0"`
	GuaranteeChargeStart *time.Time `json:"guarantee_charge_start"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createLeaseRequest
	if err := request.Decode(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	l, err := h.svc.Create(r.Context(), lease.CreateParams{
		PropertyID:           req.PropertyID,
		TenantID:             req.TenantID,
		Value:                req.Value,
		DueDay:               req.DueDay,
		StartDate:            req.StartDate,
		EndDate:              req.EndDate,
		AdjustmentIndex:      lease.AdjustmentIndex(req.AdjustmentIndex),
		GuaranteeType:        lease.GuaranteeType(req.GuaranteeType),
		GuaranteeAmount:      req.GuaranteeAmount,
		GuaranteeChargeStart: req.GuaranteeChargeStart,
	})
	if err != nil {
		switch {
		case errors.Is(err, property.ErrNotFound):
			respond.Error(w, http.StatusNotFound, "property not found")
		case errors.Is(err, tenant.ErrNotFound):
			respond.Error(w, http.StatusNotFound, "tenant not found")
		default:
			respond.Internal(w, err)
		}

		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(l))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	leases, err := h.svc.List(r.Context())
	if err != nil {
		respond.Internal(w, err)
		return
	}

	resp := make([]leaseResponse, len(leases))
	for i, l := range leases {
		resp[i] = toResponse(l)
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	l, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, lease.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "lease not found")
			return
		}

		respond.Internal(w, err)

		return
	}

	respond.JSON(w, http.StatusOK, toResponse(l))
}

type updateLeaseRequest struct {
	Value                *int64     `json:"value" validate:"omitempty,gt=0"`
	DueDay               *int       `json:"due_day" validate:"omitempty,min=1,max=31"`
	StartDate            *time.Time `json:"start_date"`
	EndDate              *time.Time `json:"end_date"`
	AdjustmentIndex      *string    `json:"adjustment_index" validate:"omitempty,oneof=IPCA IGPM INPC"`
	Status               *string    `json:"status" validate:"omitempty,oneof=ACTIVE EXPIRED TERMINATED"`
	GuaranteeType        *string    `json:"guarantee_type" validate:"omitempty,oneof=DEPOSIT SURETY_INSURANCE GUARANTOR"`
	GuaranteeAmount      *int64     `json:"guarantee_amount" validate:"omitempty,min=0"`
	GuaranteeChargeStart *time.Time `json:"guarantee_charge_start"`

	// Termination fields, consulted only when status is TERMINATED.
	TerminationDate             string `json:"termination_date"`
	KeyReturnDate               string `json:"key_return_date"`
	TerminationReason           string `json:"termination_reason"`
	OutstandingDebt             int64  `json:"outstanding_debt" validate:"min=0"`
	KeyReturnSigned             bool   `json:"key_return_signed"`
	TerminationContractSigned   bool   `json:"termination_contract_signed"`
	SettlementWithDebtSigned    bool   `json:"settlement_with_debt_signed"`
	SettlementWithoutDebtSigned bool   `json:"settlement_without_debt_signed"`
}

// update applies partial edits. A status of TERMINATED is routed through the
// termination flow so the outstanding-debt guard always runs.
func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req updateLeaseRequest
	if err := request.Decode(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Status != nil && lease.Status(*req.Status) == lease.StatusTerminated {
		h.terminate(w, r, id, req)
		return
	}

	params := lease.UpdateParams{
		Value:                req.Value,
		DueDay:               req.DueDay,
		StartDate:            req.StartDate,
		EndDate:              req.EndDate,
		GuaranteeAmount:      req.GuaranteeAmount,
		GuaranteeChargeStart: req.GuaranteeChargeStart,
	}

	if req.AdjustmentIndex != nil {
		idx := lease.AdjustmentIndex(*req.AdjustmentIndex)
		params.AdjustmentIndex = &idx
	}

	if req.Status != nil {
		st := lease.Status(*req.Status)
		params.Status = &st
	}

	if req.GuaranteeType != nil {
		gt := lease.GuaranteeType(*req.GuaranteeType)
		params.GuaranteeType = &gt
	}

	l, err := h.svc.Update(r.Context(), id, params)
	if err != nil {
		switch {
		case errors.Is(err, lease.ErrNotFound):
			respond.Error(w, http.StatusNotFound, "lease not found")
		case errors.Is(err, lease.ErrAlreadyTerminated):
			respond.Error(w, http.StatusBadRequest, "lease already terminated")
		default:
			respond.Internal(w, err)
		}

		return
	}

	respond.JSON(w, http.StatusOK, toResponse(l))
}

func (h *Handler) terminate(w http.ResponseWriter, r *http.Request, id uuid.UUID, req updateLeaseRequest) {
	terminationDate, err := parseDate(req.TerminationDate)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid termination_date")
		return
	}

	if terminationDate == nil {
		now := time.Now()
		terminationDate = &now
	}

	keyReturnDate, err := parseDate(req.KeyReturnDate)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid key_return_date")
		return
	}

	l, err := h.svc.Terminate(r.Context(), id, lease.TerminateParams{
		TerminationDate:             *terminationDate,
		KeyReturnDate:               keyReturnDate,
		Reason:                      req.TerminationReason,
		OutstandingDebt:             req.OutstandingDebt,
		KeyReturnSigned:             req.KeyReturnSigned,
		TerminationContractSigned:   req.TerminationContractSigned,
		SettlementWithDebtSigned:    req.SettlementWithDebtSigned,
		SettlementWithoutDebtSigned: req.SettlementWithoutDebtSigned,
	})
	if err != nil {
		var debtErr *lease.DebtOutstandingError

		switch {
		case errors.Is(err, lease.ErrNotFound):
			respond.Error(w, http.StatusNotFound, "lease not found")
		case errors.Is(err, lease.ErrAlreadyTerminated):
			respond.Error(w, http.StatusBadRequest, "lease already terminated")
		case errors.As(err, &debtErr):
			respond.Error(w, http.StatusBadRequest, debtErr.Error())
		default:
			respond.Internal(w, err)
		}

		return
	}

	respond.JSON(w, http.StatusOK, toResponse(l))
}

// parseDate accepts date-only or RFC 3339 timestamps; empty means absent.
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return &t, nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", s, err)
	}

	return &t, nil
}

func (h *Handler) sync(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	l, err := h.svc.Sync(r.Context(), id)
	if err != nil {
		var providerErr *billing.ProviderError

		switch {
		case errors.Is(err, lease.ErrNotFound):
			respond.Error(w, http.StatusNotFound, "lease not found")
		case errors.As(err, &providerErr):
			respond.Error(w, http.StatusBadGateway, providerErr.Error())
		default:
			respond.Internal(w, err)
		}

		return
	}

	respond.JSON(w, http.StatusOK, toResponse(l))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, lease.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "lease not found")
			return
		}

		respond.Internal(w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
