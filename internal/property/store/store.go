package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmarins/rently/internal/owner"
	"github.com/dmarins/rently/internal/property"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Properties are always read joined with their owner so the billing bridge can
// reach the payout account without a second round trip.
const selectPropertyColumns = `
	p.id, p.address, p.description, p.owner_id, p.created_at, p.updated_at,
	o.id, o.name, o.email, o.tax_id, o.phone, o.bank_info, o.pix_key,
	o.payout_account_id, o.created_at, o.updated_at
`

type scanner interface {
	Scan(dest ...any) error
}

func scanProperty(s scanner) (*property.Property, error) {
	var p property.Property

	var o owner.Owner

	var desc sql.NullString

	var ownerPhone, ownerBankInfo, ownerPixKey sql.NullString

	if err := s.Scan(
		&p.ID, &p.Address, &desc, &p.OwnerID, &p.CreatedAt, &p.UpdatedAt,
		&o.ID, &o.Name, &o.Email, &o.TaxID, &ownerPhone, &ownerBankInfo, &ownerPixKey,
		&o.PayoutAccountID, &o.CreatedAt, &o.UpdatedAt,
	); err != nil {
		return nil, err
	}

	p.Description = desc.String
	o.Phone = ownerPhone.String
	o.BankInfo = ownerBankInfo.String
	o.PixKey = ownerPixKey.String
	p.Owner = &o

	return &p, nil
}

func (s *Store) CreateProperty(ctx context.Context, p *property.Property) error {
	query := `
		INSERT INTO properties (address, description, owner_id, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		p.Address,
		p.Description,
		p.OwnerID,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating property: %w", err)
	}

	return nil
}

func (s *Store) GetProperty(ctx context.Context, id uuid.UUID) (*property.Property, error) {
	query := `SELECT ` + selectPropertyColumns + `
		FROM properties p
		JOIN owners o ON p.owner_id = o.id
		WHERE p.id = $1`

	p, err := scanProperty(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, property.ErrNotFound
		}

		return nil, fmt.Errorf("getting property: %w", err)
	}

	return p, nil
}

func (s *Store) ListProperties(ctx context.Context) ([]*property.Property, error) {
	query := `SELECT ` + selectPropertyColumns + `
		FROM properties p
		JOIN owners o ON p.owner_id = o.id
		ORDER BY p.address ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing properties: %w", err)
	}
	defer rows.Close()

	var properties []*property.Property

	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning property: %w", err)
		}

		properties = append(properties, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating property rows: %w", err)
	}

	return properties, nil
}

func (s *Store) UpdateProperty(ctx context.Context, p *property.Property) error {
	query := `
		UPDATE properties
		SET address = $1, description = $2, owner_id = $3, updated_at = NOW()
		WHERE id = $4
	`

	res, err := s.db.ExecContext(ctx, query,
		p.Address,
		p.Description,
		p.OwnerID,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating property: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return property.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteProperty(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting property: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return property.ErrNotFound
	}

	return nil
}
