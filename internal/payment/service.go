package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=payment
type Repository interface {
	CreatePayment(ctx context.Context, p *Payment) error
	GetPayment(ctx context.Context, id uuid.UUID) (*Payment, error)
	ListPayments(ctx context.Context, filter ListFilter) ([]*Payment, error)

	// BeginSettlement opens a transaction holding a row lock on the payment,
	// so concurrent settlements of the same installment serialize.
	BeginSettlement(ctx context.Context, id uuid.UUID) (SettlementTx, error)
}

type SettlementTx interface {
	Payment() *Payment
	UpdatePayment(ctx context.Context, p *Payment) error
	CreatePayment(ctx context.Context, p *Payment) error
	Commit() error
	Rollback() error
}

type ListFilter struct {
	Status  *Status
	LeaseID *uuid.UUID
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Payment, error) {
	return s.repo.GetPayment(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Payment, error) {
	return s.repo.ListPayments(ctx, filter)
}

type SettleParams struct {
	AmountReceived int64
	Method         Method
	Notes          *string
}

// SettleResult reports the updated installment and, for a partial
// settlement, the newly created remainder row.
type SettleResult struct {
	Payment   *Payment
	Remainder *Payment
}

// Settle records money received against an installment.
//
// With received >= amount due, the installment is settled in place; an
// overpayment stores the raw received value uncapped so the excess stays
// auditable. With 0 < received < due, the installment is settled for the
// partial amount and a new pending row tracks the shortfall under the same
// lease and due date. With received <= 0 the call degrades to a plain field
// update (method, notes) with no receive workflow.
func (s *Service) Settle(ctx context.Context, id uuid.UUID, params SettleParams) (*SettleResult, error) {
	stx, err := s.repo.BeginSettlement(ctx, id)
	if err != nil {
		return nil, err
	}
	defer stx.Rollback()

	p := stx.Payment()

	if params.AmountReceived <= 0 {
		if params.Method != "" {
			p.Method = params.Method
		}

		if params.Notes != nil {
			p.Notes = *params.Notes
		}

		if err := stx.UpdatePayment(ctx, p); err != nil {
			return nil, fmt.Errorf("updating payment: %w", err)
		}

		if err := stx.Commit(); err != nil {
			return nil, fmt.Errorf("committing settlement: %w", err)
		}

		return &SettleResult{Payment: p}, nil
	}

	if p.Status == StatusReceived {
		return nil, ErrAlreadySettled
	}

	now := time.Now()

	p.Status = StatusReceived
	p.PaymentDate = &now
	p.AmountReceived = params.AmountReceived

	if params.Method != "" {
		p.Method = params.Method
	}

	if params.Notes != nil {
		p.Notes = *params.Notes
	}

	var remainder *Payment

	if params.AmountReceived < p.Amount {
		remainder = New(CreateParams{
			LeaseID: p.LeaseID,
			Amount:  p.Amount - params.AmountReceived,
			Status:  StatusPending,
			DueDate: p.DueDate,
			Method:  MethodProvider,
			Notes:   fmt.Sprintf("remaining balance from partial settlement (ref #%s)", p.ID),
		})
	}

	if err := stx.UpdatePayment(ctx, p); err != nil {
		return nil, fmt.Errorf("updating payment: %w", err)
	}

	if remainder != nil {
		if err := stx.CreatePayment(ctx, remainder); err != nil {
			return nil, fmt.Errorf("creating remainder payment: %w", err)
		}
	}

	if err := stx.Commit(); err != nil {
		return nil, fmt.Errorf("committing settlement: %w", err)
	}

	return &SettleResult{Payment: p, Remainder: remainder}, nil
}
