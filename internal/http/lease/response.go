package lease

import (
	"time"

	"github.com/google/uuid"

	"github.com/dmarins/rently/internal/lease"
)

type leasePropertyResponse struct {
	ID      uuid.UUID `json:"id"`
	Address string    `json:"address"`
}

type leaseTenantResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type leaseResponse struct {
	ID              uuid.UUID             `json:"id"`
	PropertyID      uuid.UUID             `json:"property_id"`
	TenantID        uuid.UUID             `json:"tenant_id"`
	Value           int64                 `json:"value"`
	DueDay          int                   `json:"due_day"`
	StartDate       time.Time             `json:"start_date"`
	EndDate         time.Time             `json:"end_date"`
	AdjustmentIndex lease.AdjustmentIndex `json:"adjustment_index"`
	Status          lease.Status          `json:"status"`
	SubscriptionID  *string               `json:"subscription_id,omitempty"`

	GuaranteeType        lease.GuaranteeType `json:"guarantee_type"`
	GuaranteeAmount      int64               `json:"guarantee_amount"`
	GuaranteeChargeStart *time.Time          `json:"guarantee_charge_start,omitempty"`

	TerminationDate             *time.Time `json:"termination_date,omitempty"`
	KeyReturnDate               *time.Time `json:"key_return_date,omitempty"`
	TerminationReason           string     `json:"termination_reason,omitempty"`
	OutstandingDebt             int64      `json:"outstanding_debt,omitempty"`
	KeyReturnSigned             bool       `json:"key_return_signed"`
	TerminationContractSigned   bool       `json:"termination_contract_signed"`
	SettlementWithDebtSigned    bool       `json:"settlement_with_debt_signed"`
	SettlementWithoutDebtSigned bool       `json:"settlement_without_debt_signed"`

	Property *leasePropertyResponse `json:"property,omitempty"`
	Tenant   *leaseTenantResponse   `json:"tenant,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func toResponse(l *lease.Lease) leaseResponse {
	resp := leaseResponse{
		ID:                          l.ID,
		PropertyID:                  l.PropertyID,
		TenantID:                    l.TenantID,
		Value:                       l.Value,
		DueDay:                      l.DueDay,
		StartDate:                   l.StartDate,
		EndDate:                     l.EndDate,
		AdjustmentIndex:             l.AdjustmentIndex,
		Status:                      l.Status,
		SubscriptionID:              l.SubscriptionID,
		GuaranteeType:               l.GuaranteeType,
		GuaranteeAmount:             l.GuaranteeAmount,
		GuaranteeChargeStart:        l.GuaranteeChargeStart,
		TerminationDate:             l.TerminationDate,
		KeyReturnDate:               l.KeyReturnDate,
		TerminationReason:           l.TerminationReason,
		OutstandingDebt:             l.OutstandingDebt,
		KeyReturnSigned:             l.KeyReturnSigned,
		TerminationContractSigned:   l.TerminationContractSigned,
		SettlementWithDebtSigned:    l.SettlementWithDebtSigned,
		SettlementWithoutDebtSigned: l.SettlementWithoutDebtSigned,
		CreatedAt:                   l.CreatedAt,
		UpdatedAt:                   l.UpdatedAt,
	}

	if l.Property != nil {
		resp.Property = &leasePropertyResponse{
			ID:      l.Property.ID,
			Address: l.Property.Address,
		}
	}

	if l.Tenant != nil {
		resp.Tenant = &leaseTenantResponse{
			ID:    l.Tenant.ID,
			Name:  l.Tenant.Name,
			Email: l.Tenant.Email,
		}
	}

	return resp
}
