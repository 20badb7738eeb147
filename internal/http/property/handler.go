package property

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmarins/rently/internal/http/request"
	"github.com/dmarins/rently/internal/http/respond"
	"github.com/dmarins/rently/internal/property"
)

type Handler struct {
	svc *property.Service
}

func NewHandler(svc *property.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type propertyOwnerResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type propertyResponse struct {
	ID          uuid.UUID              `json:"id"`
	Address     string                 `json:"address"`
	Description string                 `json:"description,omitempty"`
	OwnerID     uuid.UUID              `json:"owner_id"`
	Owner       *propertyOwnerResponse `json:"owner,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   *time.Time             `json:"updated_at,omitempty"`
}

func toResponse(p *property.Property) propertyResponse {
	resp := propertyResponse{
		ID:          p.ID,
		Address:     p.Address,
		Description: p.Description,
		OwnerID:     p.OwnerID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}

	if p.Owner != nil {
		resp.Owner = &propertyOwnerResponse{
			ID:    p.Owner.ID,
			Name:  p.Owner.Name,
			Email: p.Owner.Email,
		}
	}

	return resp
}

type createPropertyRequest struct {
	Address     string    `json:"address" validate:"required"`
	Description string    `json:"description"`
	OwnerID     uuid.UUID `json:"owner_id" validate:"required"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createPropertyRequest
	if err := request.Decode(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.svc.Create(r.Context(), property.CreateParams{
		Address:     req.Address,
		Description: req.Description,
		OwnerID:     req.OwnerID,
	})
	if err != nil {
		respond.Internal(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(p))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	properties, err := h.svc.List(r.Context())
	if err != nil {
		respond.Internal(w, err)
		return
	}

	resp := make([]propertyResponse, len(properties))
	for i, p := range properties {
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
		if errors.Is(err, property.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "property not found")
			return
		}

		respond.Internal(w, err)

		return
	}

	respond.JSON(w, http.StatusOK, toResponse(p))
}

type updatePropertyRequest struct {
	Address     *string    `json:"address" validate:"omitempty,min=1"`
	Description *string    `json:"description"`
	OwnerID     *uuid.UUID `json:"owner_id"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req updatePropertyRequest
	if err := request.Decode(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.svc.Update(r.Context(), id, property.UpdateParams{
		Address:     req.Address,
		Description: req.Description,
		OwnerID:     req.OwnerID,
	})
	if err != nil {
		if errors.Is(err, property.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "property not found")
			return
		}

		respond.Internal(w, err)

		return
	}

	respond.JSON(w, http.StatusOK, toResponse(p))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, property.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "property not found")
			return
		}

		respond.Internal(w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
