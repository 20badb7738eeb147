package dashboard

import (
	"context"
	"fmt"

	"github.com/dmarins/rently/internal/lease"
	"github.com/dmarins/rently/internal/payment"
)

// Stats is the portfolio-wide financial snapshot. Monetary sums are in cents.
type Stats struct {
	TotalProperties        int
	TotalTenants           int
	ActiveLeases           int
	PendingPaymentsAmount  int64
	ReceivedPaymentsAmount int64
}

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=dashboard
type Repository interface {
	CountProperties(ctx context.Context) (int, error)
	CountTenants(ctx context.Context) (int, error)
	CountLeasesByStatus(ctx context.Context, status lease.Status) (int, error)
	// SumPaymentAmounts sums the original amount due over payments in any of
	// the given statuses; zero rows sum to 0.
	SumPaymentAmounts(ctx context.Context, statuses ...payment.Status) (int64, error)
	// SumAmountsReceived sums amount_received over RECEIVED payments.
	SumAmountsReceived(ctx context.Context) (int64, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Stats recomputes the snapshot on every call; nothing is cached.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	properties, err := s.repo.CountProperties(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting properties: %w", err)
	}

	tenants, err := s.repo.CountTenants(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting tenants: %w", err)
	}

	activeLeases, err := s.repo.CountLeasesByStatus(ctx, lease.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("counting active leases: %w", err)
	}

	pending, err := s.repo.SumPaymentAmounts(ctx, payment.StatusPending, payment.StatusOverdue)
	if err != nil {
		return nil, fmt.Errorf("summing pending payments: %w", err)
	}

	received, err := s.repo.SumAmountsReceived(ctx)
	if err != nil {
		return nil, fmt.Errorf("summing received payments: %w", err)
	}

	return &Stats{
		TotalProperties:        properties,
		TotalTenants:           tenants,
		ActiveLeases:           activeLeases,
		PendingPaymentsAmount:  pending,
		ReceivedPaymentsAmount: received,
	}, nil
}
