package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmarins/rently/internal/payment"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectPaymentColumns = `
	p.id, p.lease_id, p.amount, p.status, p.due_date, p.payment_date,
	p.method, p.amount_received, p.notes, p.provider_payment_id,
	p.created_at, p.updated_at
`

const selectPaymentWithLeaseColumns = selectPaymentColumns + `,
	l.id, l.property_id, l.tenant_id, l.value, l.due_day, l.status
`

func scanPayment(s scanner) (*payment.Payment, error) {
	var p payment.Payment

	var statusStr, methodStr string

	var notes sql.NullString

	if err := s.Scan(
		&p.ID, &p.LeaseID, &p.Amount, &statusStr, &p.DueDate, &p.PaymentDate,
		&methodStr, &p.AmountReceived, &notes, &p.ProviderPaymentID,
		&p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	p.Status = payment.Status(statusStr)
	p.Method = payment.Method(methodStr)
	p.Notes = notes.String

	return &p, nil
}

func scanPaymentWithLease(s scanner) (*payment.Payment, error) {
	var p payment.Payment

	var l payment.LeaseSummary

	var statusStr, methodStr string

	var notes sql.NullString

	if err := s.Scan(
		&p.ID, &p.LeaseID, &p.Amount, &statusStr, &p.DueDate, &p.PaymentDate,
		&methodStr, &p.AmountReceived, &notes, &p.ProviderPaymentID,
		&p.CreatedAt, &p.UpdatedAt,
		&l.ID, &l.PropertyID, &l.TenantID, &l.Value, &l.DueDay, &l.Status,
	); err != nil {
		return nil, err
	}

	p.Status = payment.Status(statusStr)
	p.Method = payment.Method(methodStr)
	p.Notes = notes.String
	p.Lease = &l

	return &p, nil
}

const insertPaymentQuery = `
	INSERT INTO payments (lease_id, amount, status, due_date, payment_date,
		method, amount_received, notes, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
	RETURNING id, created_at
`

func (s *Store) CreatePayment(ctx context.Context, p *payment.Payment) error {
	err := s.db.QueryRowContext(ctx, insertPaymentQuery,
		p.LeaseID,
		p.Amount,
		p.Status,
		p.DueDate,
		p.PaymentDate,
		p.Method,
		p.AmountReceived,
		p.Notes,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating payment: %w", err)
	}

	return nil
}

func (s *Store) GetPayment(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
	query := `SELECT ` + selectPaymentColumns + ` FROM payments p WHERE p.id = $1`

	p, err := scanPayment(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payment.ErrNotFound
		}

		return nil, fmt.Errorf("getting payment: %w", err)
	}

	return p, nil
}

func (s *Store) ListPayments(ctx context.Context, filter payment.ListFilter) ([]*payment.Payment, error) {
	query := `SELECT ` + selectPaymentWithLeaseColumns + `
		FROM payments p
		JOIN leases l ON p.lease_id = l.id`

	var args []any

	argIdx := 1

	where := ""

	if filter.Status != nil {
		where += fmt.Sprintf(" WHERE p.status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.LeaseID != nil {
		if where == "" {
			where = fmt.Sprintf(" WHERE p.lease_id = $%d", argIdx)
		} else {
			where += fmt.Sprintf(" AND p.lease_id = $%d", argIdx)
		}

		args = append(args, *filter.LeaseID)
	}

	query += where + " ORDER BY p.due_date ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing payments: %w", err)
	}
	defer rows.Close()

	var payments []*payment.Payment

	for rows.Next() {
		p, err := scanPaymentWithLease(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning payment: %w", err)
		}

		payments = append(payments, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating payment rows: %w", err)
	}

	return payments, nil
}

type settlementTx struct {
	tx *sql.Tx
	p  *payment.Payment
}

// BeginSettlement opens a transaction and re-reads the payment FOR UPDATE so
// a concurrent settlement of the same row blocks until this one resolves.
func (s *Store) BeginSettlement(ctx context.Context, id uuid.UUID) (payment.SettlementTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning settlement tx: %w", err)
	}

	query := `SELECT ` + selectPaymentColumns + ` FROM payments p WHERE p.id = $1 FOR UPDATE`

	p, err := scanPayment(dbTx.QueryRowContext(ctx, query, id))
	if err != nil {
		dbTx.Rollback()

		if errors.Is(err, sql.ErrNoRows) {
			return nil, payment.ErrNotFound
		}

		return nil, fmt.Errorf("locking payment: %w", err)
	}

	return &settlementTx{tx: dbTx, p: p}, nil
}

func (stx *settlementTx) Payment() *payment.Payment { return stx.p }
func (stx *settlementTx) Commit() error             { return stx.tx.Commit() }
func (stx *settlementTx) Rollback() error           { return stx.tx.Rollback() }

func (stx *settlementTx) UpdatePayment(ctx context.Context, p *payment.Payment) error {
	query := `
		UPDATE payments
		SET status = $1, payment_date = $2, method = $3, amount_received = $4,
			notes = $5, updated_at = NOW()
		WHERE id = $6
	`

	_, err := stx.tx.ExecContext(ctx, query,
		p.Status,
		p.PaymentDate,
		p.Method,
		p.AmountReceived,
		p.Notes,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating payment: %w", err)
	}

	return nil
}

func (stx *settlementTx) CreatePayment(ctx context.Context, p *payment.Payment) error {
	err := stx.tx.QueryRowContext(ctx, insertPaymentQuery,
		p.LeaseID,
		p.Amount,
		p.Status,
		p.DueDate,
		p.PaymentDate,
		p.Method,
		p.AmountReceived,
		p.Notes,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating payment: %w", err)
	}

	return nil
}
