package lease

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmarins/rently/internal/payment"
	"github.com/dmarins/rently/internal/property"
	"github.com/dmarins/rently/internal/tenant"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=lease
type Repository interface {
	// CreateLeaseWithPayments persists the lease and its derived installments
	// in one transaction; either all rows exist afterwards or none do.
	CreateLeaseWithPayments(ctx context.Context, l *Lease, installments []*payment.Payment) error
	GetLease(ctx context.Context, id uuid.UUID) (*Lease, error)
	ListLeases(ctx context.Context) ([]*Lease, error)
	UpdateLease(ctx context.Context, l *Lease) error
	SetSubscriptionID(ctx context.Context, id uuid.UUID, subscriptionID string) error
	// DeleteLease removes the lease and its payments in one transaction; the
	// cascade is explicit, not delegated to the schema.
	DeleteLease(ctx context.Context, id uuid.UUID) error
	// CountUnsettledPayments counts the lease's payments still PENDING or
	// OVERDUE.
	CountUnsettledPayments(ctx context.Context, leaseID uuid.UUID) (int, error)
}

// PropertyDirectory resolves a property together with its owner.
type PropertyDirectory interface {
	GetProperty(ctx context.Context, id uuid.UUID) (*property.Property, error)
}

type TenantDirectory interface {
	GetTenant(ctx context.Context, id uuid.UUID) (*tenant.Tenant, error)
}

// Biller creates the recurring billing subscription for a lease with the
// provider and returns the subscription id.
type Biller interface {
	SubscribeLease(ctx context.Context, l *Lease, p *property.Property, t *tenant.Tenant) (string, error)
}

type Service struct {
	repo       Repository
	properties PropertyDirectory
	tenants    TenantDirectory
	biller     Biller
}

func NewService(repo Repository, properties PropertyDirectory, tenants TenantDirectory, biller Biller) *Service {
	return &Service{
		repo:       repo,
		properties: properties,
		tenants:    tenants,
		biller:     biller,
	}
}

type CreateParams struct {
	PropertyID           uuid.UUID
	TenantID             uuid.UUID
	Value                int64
	DueDay               int
	StartDate            time.Time
	EndDate              time.Time
	AdjustmentIndex      AdjustmentIndex
	GuaranteeType        GuaranteeType
	GuaranteeAmount      int64
	GuaranteeChargeStart *time.Time
}

// Create originates a lease: it resolves the property (with owner) and the
// tenant, persists the lease with its payment schedule atomically, then
// makes a best-effort attempt to set up recurring billing. A billing failure
// leaves the lease usable with no subscription id.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Lease, error) {
	prop, err := s.properties.GetProperty(ctx, params.PropertyID)
	if err != nil {
		return nil, err
	}

	ten, err := s.tenants.GetTenant(ctx, params.TenantID)
	if err != nil {
		return nil, err
	}

	l := &Lease{
		PropertyID:           params.PropertyID,
		TenantID:             params.TenantID,
		Value:                params.Value,
		DueDay:               params.DueDay,
		StartDate:            params.StartDate,
		EndDate:              params.EndDate,
		AdjustmentIndex:      params.AdjustmentIndex,
		Status:               StatusActive,
		GuaranteeType:        params.GuaranteeType,
		GuaranteeAmount:      params.GuaranteeAmount,
		GuaranteeChargeStart: params.GuaranteeChargeStart,
	}

	installments := []*payment.Payment{
		payment.New(payment.CreateParams{
			Amount:  params.Value,
			Status:  payment.StatusPending,
			DueDate: params.StartDate,
			Method:  payment.MethodProvider,
			Notes:   "first month rent",
		}),
	}

	if params.GuaranteeType == GuaranteeDeposit && params.GuaranteeAmount > 0 {
		now := time.Now()
		installments = append(installments, payment.New(payment.CreateParams{
			Amount:         params.GuaranteeAmount,
			Status:         payment.StatusReceived,
			DueDate:        params.StartDate,
			PaymentDate:    &now,
			Method:         payment.MethodCash,
			AmountReceived: params.GuaranteeAmount,
			Notes:          "security deposit received at signing",
		}))
	}

	if err := s.repo.CreateLeaseWithPayments(ctx, l, installments); err != nil {
		return nil, err
	}

	// Billing runs after the local commit and never rolls it back.
	s.subscribe(ctx, l, prop, ten)

	return l, nil
}

func (s *Service) subscribe(ctx context.Context, l *Lease, prop *property.Property, ten *tenant.Tenant) {
	subID, err := s.biller.SubscribeLease(ctx, l, prop, ten)
	if err != nil {
		slog.Warn("billing subscription failed; lease remains unbilled",
			"lease_id", l.ID, "error", err)
		return
	}

	if err := s.repo.SetSubscriptionID(ctx, l.ID, subID); err != nil {
		slog.Error("failed to store subscription id", "lease_id", l.ID, "error", err)
		return
	}

	l.SubscriptionID = &subID
}

// Sync re-invokes subscription creation with the provider. Unlike the
// best-effort call during origination, failures propagate to the caller.
func (s *Service) Sync(ctx context.Context, id uuid.UUID) (*Lease, error) {
	l, err := s.repo.GetLease(ctx, id)
	if err != nil {
		return nil, err
	}

	prop, err := s.properties.GetProperty(ctx, l.PropertyID)
	if err != nil {
		return nil, err
	}

	ten, err := s.tenants.GetTenant(ctx, l.TenantID)
	if err != nil {
		return nil, err
	}

	subID, err := s.biller.SubscribeLease(ctx, l, prop, ten)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SetSubscriptionID(ctx, l.ID, subID); err != nil {
		return nil, err
	}

	l.SubscriptionID = &subID

	return l, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Lease, error) {
	return s.repo.GetLease(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Lease, error) {
	return s.repo.ListLeases(ctx)
}

type UpdateParams struct {
	Value                *int64
	DueDay               *int
	StartDate            *time.Time
	EndDate              *time.Time
	AdjustmentIndex      *AdjustmentIndex
	Status               *Status
	GuaranteeType        *GuaranteeType
	GuaranteeAmount      *int64
	GuaranteeChargeStart *time.Time
}

// Update applies a generic partial edit. Status transitions to TERMINATED do
// not come through here; the handler routes those to Terminate so the debt
// guard cannot be bypassed. A lease that is already TERMINATED is final and
// rejects every edit, so the status cannot be flipped back either.
func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Lease, error) {
	l, err := s.repo.GetLease(ctx, id)
	if err != nil {
		return nil, err
	}

	if l.Status == StatusTerminated {
		return nil, ErrAlreadyTerminated
	}

	if params.Value != nil {
		l.Value = *params.Value
	}

	if params.DueDay != nil {
		l.DueDay = *params.DueDay
	}

	if params.StartDate != nil {
		l.StartDate = *params.StartDate
	}

	if params.EndDate != nil {
		l.EndDate = *params.EndDate
	}

	if params.AdjustmentIndex != nil {
		l.AdjustmentIndex = *params.AdjustmentIndex
	}

	if params.Status != nil {
		l.Status = *params.Status
	}

	if params.GuaranteeType != nil {
		l.GuaranteeType = *params.GuaranteeType
	}

	if params.GuaranteeAmount != nil {
		l.GuaranteeAmount = *params.GuaranteeAmount
	}

	if params.GuaranteeChargeStart != nil {
		l.GuaranteeChargeStart = params.GuaranteeChargeStart
	}

	if err := s.repo.UpdateLease(ctx, l); err != nil {
		return nil, err
	}

	return l, nil
}

type TerminateParams struct {
	TerminationDate             time.Time
	KeyReturnDate               *time.Time
	Reason                      string
	OutstandingDebt             int64
	KeyReturnSigned             bool
	TerminationContractSigned   bool
	SettlementWithDebtSigned    bool
	SettlementWithoutDebtSigned bool
}

// Terminate transitions a lease to TERMINATED. It refuses while any of the
// lease's payments is still PENDING or OVERDUE, returning a
// DebtOutstandingError without touching the row.
func (s *Service) Terminate(ctx context.Context, id uuid.UUID, params TerminateParams) (*Lease, error) {
	l, err := s.repo.GetLease(ctx, id)
	if err != nil {
		return nil, err
	}

	if l.Status == StatusTerminated {
		return nil, ErrAlreadyTerminated
	}

	unsettled, err := s.repo.CountUnsettledPayments(ctx, id)
	if err != nil {
		return nil, err
	}

	if unsettled > 0 {
		return nil, &DebtOutstandingError{LeaseID: id, Unsettled: unsettled}
	}

	l.Status = StatusTerminated
	l.TerminationDate = &params.TerminationDate
	l.KeyReturnDate = params.KeyReturnDate
	l.TerminationReason = params.Reason
	l.OutstandingDebt = params.OutstandingDebt
	l.KeyReturnSigned = params.KeyReturnSigned
	l.TerminationContractSigned = params.TerminationContractSigned
	l.SettlementWithDebtSigned = params.SettlementWithDebtSigned
	l.SettlementWithoutDebtSigned = params.SettlementWithoutDebtSigned

	if err := s.repo.UpdateLease(ctx, l); err != nil {
		return nil, err
	}

	return l, nil
}

// Delete removes a lease and, explicitly, its dependent payments.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteLease(ctx, id)
}
