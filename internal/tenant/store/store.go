package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmarins/rently/internal/tenant"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectTenantColumns = `
	t.id, t.name, t.email, t.tax_id, t.phone, t.customer_id, t.created_at, t.updated_at
`

type scanner interface {
	Scan(dest ...any) error
}

func scanTenant(s scanner) (*tenant.Tenant, error) {
	var t tenant.Tenant

	var phone sql.NullString

	if err := s.Scan(
		&t.ID, &t.Name, &t.Email, &t.TaxID, &phone, &t.CustomerID,
		&t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		return nil, err
	}

	t.Phone = phone.String

	return &t, nil
}

func (s *Store) CreateTenant(ctx context.Context, t *tenant.Tenant) error {
	query := `
		INSERT INTO tenants (name, email, tax_id, phone, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		t.Name,
		t.Email,
		t.TaxID,
		t.Phone,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating tenant: %w", err)
	}

	return nil
}

func (s *Store) GetTenant(ctx context.Context, id uuid.UUID) (*tenant.Tenant, error) {
	query := `SELECT ` + selectTenantColumns + ` FROM tenants t WHERE t.id = $1`

	t, err := scanTenant(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, tenant.ErrNotFound
		}

		return nil, fmt.Errorf("getting tenant: %w", err)
	}

	return t, nil
}

func (s *Store) ListTenants(ctx context.Context) ([]*tenant.Tenant, error) {
	query := `SELECT ` + selectTenantColumns + ` FROM tenants t ORDER BY t.name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing tenants: %w", err)
	}
	defer rows.Close()

	var tenants []*tenant.Tenant

	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning tenant: %w", err)
		}

		tenants = append(tenants, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tenant rows: %w", err)
	}

	return tenants, nil
}

func (s *Store) UpdateTenant(ctx context.Context, t *tenant.Tenant) error {
	query := `
		UPDATE tenants
		SET name = $1, email = $2, tax_id = $3, phone = $4, updated_at = NOW()
		WHERE id = $5
	`

	res, err := s.db.ExecContext(ctx, query,
		t.Name,
		t.Email,
		t.TaxID,
		t.Phone,
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating tenant: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return tenant.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteTenant(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM tenants WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting tenant: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return tenant.ErrNotFound
	}

	return nil
}

func (s *Store) SetCustomerID(ctx context.Context, id uuid.UUID, customerID string) error {
	query := `
		UPDATE tenants
		SET customer_id = $1, updated_at = NOW()
		WHERE id = $2
	`

	res, err := s.db.ExecContext(ctx, query, customerID, id)
	if err != nil {
		return fmt.Errorf("setting customer id: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return tenant.ErrNotFound
	}

	return nil
}
