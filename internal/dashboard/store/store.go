package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmarins/rently/internal/lease"
	"github.com/dmarins/rently/internal/payment"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CountProperties(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM properties`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting properties: %w", err)
	}

	return count, nil
}

func (s *Store) CountTenants(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tenants`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting tenants: %w", err)
	}

	return count, nil
}

func (s *Store) CountLeasesByStatus(ctx context.Context, status lease.Status) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM leases WHERE status = $1`, status).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting leases: %w", err)
	}

	return count, nil
}

func (s *Store) SumPaymentAmounts(ctx context.Context, statuses ...payment.Status) (int64, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM payments WHERE status = ANY($1)`

	values := make([]string, len(statuses))
	for i, st := range statuses {
		values[i] = string(st)
	}

	var sum int64
	if err := s.db.QueryRowContext(ctx, query, values).Scan(&sum); err != nil {
		return 0, fmt.Errorf("summing payment amounts: %w", err)
	}

	return sum, nil
}

func (s *Store) SumAmountsReceived(ctx context.Context) (int64, error) {
	query := `SELECT COALESCE(SUM(amount_received), 0) FROM payments WHERE status = $1`

	var sum int64
	if err := s.db.QueryRowContext(ctx, query, payment.StatusReceived).Scan(&sum); err != nil {
		return 0, fmt.Errorf("summing received amounts: %w", err)
	}

	return sum, nil
}
