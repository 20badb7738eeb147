package owner

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmarins/rently/internal/http/request"
	"github.com/dmarins/rently/internal/http/respond"
	"github.com/dmarins/rently/internal/owner"
)

type Handler struct {
	svc *owner.Service
}

func NewHandler(svc *owner.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type ownerResponse struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	TaxID           string     `json:"tax_id"`
	Phone           string     `json:"phone,omitempty"`
	BankInfo        string     `json:"bank_info,omitempty"`
	PixKey          string     `json:"pix_key,omitempty"`
	PayoutAccountID *string    `json:"payout_account_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

func toResponse(o *owner.Owner) ownerResponse {
	return ownerResponse{
		ID:              o.ID,
		Name:            o.Name,
		Email:           o.Email,
		TaxID:           o.TaxID,
		Phone:           o.Phone,
		BankInfo:        o.BankInfo,
		PixKey:          o.PixKey,
		PayoutAccountID: o.PayoutAccountID,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

type createOwnerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	TaxID    string `json:"tax_id" validate:"required"`
	Phone    string `json:"phone"`
	BankInfo string `json:"bank_info"`
	PixKey   string `json:"pix_key"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createOwnerRequest
	if err := request.Decode(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	o, err := h.svc.Create(r.Context(), owner.CreateParams{
		Name:     req.Name,
		Email:    req.Email,
		TaxID:    req.TaxID,
		Phone:    req.Phone,
		BankInfo: req.BankInfo,
		PixKey:   req.PixKey,
	})
	if err != nil {
		respond.Internal(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(o))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	owners, err := h.svc.List(r.Context())
	if err != nil {
		respond.Internal(w, err)
		return
	}

	resp := make([]ownerResponse, len(owners))
	for i, o := range owners {
		resp[i] = toResponse(o)
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	o, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, owner.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "owner not found")
			return
		}

		respond.Internal(w, err)

		return
	}

	respond.JSON(w, http.StatusOK, toResponse(o))
}

type updateOwnerRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1"`
	Email    *string `json:"email" validate:"omitempty,email"`
	TaxID    *string `json:"tax_id" validate:"omitempty,min=1"`
	Phone    *string `json:"phone"`
	BankInfo *string `json:"bank_info"`
	PixKey   *string `json:"pix_key"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req updateOwnerRequest
	if err := request.Decode(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	o, err := h.svc.Update(r.Context(), id, owner.UpdateParams{
		Name:     req.Name,
		Email:    req.Email,
		TaxID:    req.TaxID,
		Phone:    req.Phone,
		BankInfo: req.BankInfo,
		PixKey:   req.PixKey,
	})
	if err != nil {
		if errors.Is(err, owner.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "owner not found")
			return
		}

		respond.Internal(w, err)

		return
	}

	respond.JSON(w, http.StatusOK, toResponse(o))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, owner.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "owner not found")
			return
		}

		respond.Internal(w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
