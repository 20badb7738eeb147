package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmarins/rently/internal/lease"
	"github.com/dmarins/rently/internal/owner"
	"github.com/dmarins/rently/internal/payment"
	"github.com/dmarins/rently/internal/property"
	"github.com/dmarins/rently/internal/tenant"
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

const selectLeaseColumns = `
	l.id, l.property_id, l.tenant_id, l.value, l.due_day, l.start_date, l.end_date,
	l.adjustment_index, l.status, l.subscription_id,
	l.guarantee_type, l.guarantee_amount, l.guarantee_charge_start,
	l.termination_date, l.key_return_date, l.termination_reason, l.outstanding_debt,
	l.key_return_signed, l.termination_contract_signed,
	l.settlement_with_debt_signed, l.settlement_without_debt_signed,
	l.created_at, l.updated_at
`

const selectLeaseJoinedColumns = selectLeaseColumns + `,
	p.id, p.address, p.description, p.owner_id, p.created_at, p.updated_at,
	o.id, o.name, o.email, o.tax_id, o.phone, o.bank_info, o.pix_key,
	o.payout_account_id, o.created_at, o.updated_at,
	t.id, t.name, t.email, t.tax_id, t.phone, t.customer_id, t.created_at, t.updated_at
`

func scanLeaseColumns(s scanner, extra ...any) (*lease.Lease, error) {
	var l lease.Lease

	var idxStr, statusStr, guaranteeStr string

	var reason sql.NullString

	dest := []any{
		&l.ID, &l.PropertyID, &l.TenantID, &l.Value, &l.DueDay, &l.StartDate, &l.EndDate,
		&idxStr, &statusStr, &l.SubscriptionID,
		&guaranteeStr, &l.GuaranteeAmount, &l.GuaranteeChargeStart,
		&l.TerminationDate, &l.KeyReturnDate, &reason, &l.OutstandingDebt,
		&l.KeyReturnSigned, &l.TerminationContractSigned,
		&l.SettlementWithDebtSigned, &l.SettlementWithoutDebtSigned,
		&l.CreatedAt, &l.UpdatedAt,
	}
	dest = append(dest, extra...)

	if err := s.Scan(dest...); err != nil {
		return nil, err
	}

	l.AdjustmentIndex = lease.AdjustmentIndex(idxStr)
	l.Status = lease.Status(statusStr)
	l.GuaranteeType = lease.GuaranteeType(guaranteeStr)
	l.TerminationReason = reason.String

	return &l, nil
}

func scanLeaseJoined(s scanner) (*lease.Lease, error) {
	var p property.Property

	var o owner.Owner

	var t tenant.Tenant

	var propDesc, ownerPhone, ownerBankInfo, ownerPixKey, tenantPhone sql.NullString

	l, err := scanLeaseColumns(s,
		&p.ID, &p.Address, &propDesc, &p.OwnerID, &p.CreatedAt, &p.UpdatedAt,
		&o.ID, &o.Name, &o.Email, &o.TaxID, &ownerPhone, &ownerBankInfo, &ownerPixKey,
		&o.PayoutAccountID, &o.CreatedAt, &o.UpdatedAt,
		&t.ID, &t.Name, &t.Email, &t.TaxID, &tenantPhone, &t.CustomerID, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Description = propDesc.String
	o.Phone = ownerPhone.String
	o.BankInfo = ownerBankInfo.String
	o.PixKey = ownerPixKey.String
	p.Owner = &o
	t.Phone = tenantPhone.String

	l.Property = &p
	l.Tenant = &t

	return l, nil
}

const insertLeaseQuery = `
	INSERT INTO leases (property_id, tenant_id, value, due_day, start_date, end_date,
		adjustment_index, status, guarantee_type, guarantee_amount,
		guarantee_charge_start, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
	RETURNING id, created_at
`

const insertPaymentQuery = `
	INSERT INTO payments (lease_id, amount, status, due_date, payment_date,
		method, amount_received, notes, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
	RETURNING id, created_at
`

// CreateLeaseWithPayments inserts the lease first (the installments carry
// its foreign key) and its installments in the same transaction.
func (s *Store) CreateLeaseWithPayments(ctx context.Context, l *lease.Lease, installments []*payment.Payment) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning lease tx: %w", err)
	}
	defer dbTx.Rollback()

	err = dbTx.QueryRowContext(ctx, insertLeaseQuery,
		l.PropertyID,
		l.TenantID,
		l.Value,
		l.DueDay,
		l.StartDate,
		l.EndDate,
		l.AdjustmentIndex,
		l.Status,
		l.GuaranteeType,
		l.GuaranteeAmount,
		l.GuaranteeChargeStart,
	).Scan(&l.ID, &l.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating lease: %w", err)
	}

	for _, p := range installments {
		p.LeaseID = l.ID

		err := dbTx.QueryRowContext(ctx, insertPaymentQuery,
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
			return fmt.Errorf("creating lease installment: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing lease tx: %w", err)
	}

	return nil
}

func (s *Store) GetLease(ctx context.Context, id uuid.UUID) (*lease.Lease, error) {
	query := `SELECT ` + selectLeaseJoinedColumns + `
		FROM leases l
		JOIN properties p ON l.property_id = p.id
		JOIN owners o ON p.owner_id = o.id
		JOIN tenants t ON l.tenant_id = t.id
		WHERE l.id = $1`

	l, err := scanLeaseJoined(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, lease.ErrNotFound
		}

		return nil, fmt.Errorf("getting lease: %w", err)
	}

	return l, nil
}

func (s *Store) ListLeases(ctx context.Context) ([]*lease.Lease, error) {
	query := `SELECT ` + selectLeaseJoinedColumns + `
		FROM leases l
		JOIN properties p ON l.property_id = p.id
		JOIN owners o ON p.owner_id = o.id
		JOIN tenants t ON l.tenant_id = t.id
		ORDER BY l.start_date DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing leases: %w", err)
	}
	defer rows.Close()

	var leases []*lease.Lease

	for rows.Next() {
		l, err := scanLeaseJoined(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning lease: %w", err)
		}

		leases = append(leases, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating lease rows: %w", err)
	}

	return leases, nil
}

func (s *Store) UpdateLease(ctx context.Context, l *lease.Lease) error {
	query := `
		UPDATE leases
		SET value = $1, due_day = $2, start_date = $3, end_date = $4,
			adjustment_index = $5, status = $6,
			guarantee_type = $7, guarantee_amount = $8, guarantee_charge_start = $9,
			termination_date = $10, key_return_date = $11, termination_reason = $12,
			outstanding_debt = $13, key_return_signed = $14,
			termination_contract_signed = $15, settlement_with_debt_signed = $16,
			settlement_without_debt_signed = $17, updated_at = NOW()
		WHERE id = $18
	`

	res, err := s.db.ExecContext(ctx, query,
		l.Value,
		l.DueDay,
		l.StartDate,
		l.EndDate,
		l.AdjustmentIndex,
		l.Status,
		l.GuaranteeType,
		l.GuaranteeAmount,
		l.GuaranteeChargeStart,
		l.TerminationDate,
		l.KeyReturnDate,
		l.TerminationReason,
		l.OutstandingDebt,
		l.KeyReturnSigned,
		l.TerminationContractSigned,
		l.SettlementWithDebtSigned,
		l.SettlementWithoutDebtSigned,
		l.ID,
	)
	if err != nil {
		return fmt.Errorf("updating lease: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return lease.ErrNotFound
	}

	return nil
}

func (s *Store) SetSubscriptionID(ctx context.Context, id uuid.UUID, subscriptionID string) error {
	query := `
		UPDATE leases
		SET subscription_id = $1, updated_at = NOW()
		WHERE id = $2
	`

	res, err := s.db.ExecContext(ctx, query, subscriptionID, id)
	if err != nil {
		return fmt.Errorf("setting subscription id: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return lease.ErrNotFound
	}

	return nil
}

// DeleteLease deletes the lease's payments and then the lease itself in one
// transaction.
func (s *Store) DeleteLease(ctx context.Context, id uuid.UUID) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning delete tx: %w", err)
	}
	defer dbTx.Rollback()

	if _, err := dbTx.ExecContext(ctx, `DELETE FROM payments WHERE lease_id = $1`, id); err != nil {
		return fmt.Errorf("deleting lease payments: %w", err)
	}

	res, err := dbTx.ExecContext(ctx, `DELETE FROM leases WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting lease: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return lease.ErrNotFound
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing delete tx: %w", err)
	}

	return nil
}

func (s *Store) CountUnsettledPayments(ctx context.Context, leaseID uuid.UUID) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM payments
		WHERE lease_id = $1 AND status IN ($2, $3)
	`

	var count int
	if err := s.db.QueryRowContext(ctx, query, leaseID,
		payment.StatusPending, payment.StatusOverdue).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting unsettled payments: %w", err)
	}

	return count, nil
}
