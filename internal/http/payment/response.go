package payment

import (
	"time"

	"github.com/google/uuid"

	"github.com/dmarins/rently/internal/payment"
)

type paymentLeaseResponse struct {
	ID         uuid.UUID `json:"id"`
	PropertyID uuid.UUID `json:"property_id"`
	TenantID   uuid.UUID `json:"tenant_id"`
	Value      int64     `json:"value"`
	DueDay     int       `json:"due_day"`
	Status     string    `json:"status"`
}

type paymentResponse struct {
	ID                uuid.UUID             `json:"id"`
	LeaseID           uuid.UUID             `json:"lease_id"`
	Amount            int64                 `json:"amount"`
	Status            payment.Status        `json:"status"`
	DueDate           time.Time             `json:"due_date"`
	PaymentDate       *time.Time            `json:"payment_date,omitempty"`
	Method            payment.Method        `json:"method,omitempty"`
	AmountReceived    int64                 `json:"amount_received"`
	Notes             string                `json:"notes,omitempty"`
	ProviderPaymentID *string               `json:"provider_payment_id,omitempty"`
	Lease             *paymentLeaseResponse `json:"lease,omitempty"`
	CreatedAt         time.Time             `json:"created_at"`
	UpdatedAt         *time.Time            `json:"updated_at,omitempty"`
}

func toResponse(p *payment.Payment) paymentResponse {
	resp := paymentResponse{
		ID:                p.ID,
		LeaseID:           p.LeaseID,
		Amount:            p.Amount,
		Status:            p.Status,
		DueDate:           p.DueDate,
		PaymentDate:       p.PaymentDate,
		Method:            p.Method,
		AmountReceived:    p.AmountReceived,
		Notes:             p.Notes,
		ProviderPaymentID: p.ProviderPaymentID,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}

	if p.Lease != nil {
		resp.Lease = &paymentLeaseResponse{
			ID:         p.Lease.ID,
			PropertyID: p.Lease.PropertyID,
			TenantID:   p.Lease.TenantID,
			Value:      p.Lease.Value,
			DueDay:     p.Lease.DueDay,
			Status:     p.Lease.Status,
		}
	}

	return resp
}
