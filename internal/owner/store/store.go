package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmarins/rently/internal/owner"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectOwnerColumns = `
	o.id, o.name, o.email, o.tax_id, o.phone, o.bank_info, o.pix_key,
	o.payout_account_id, o.created_at, o.updated_at
`

type scanner interface {
	Scan(dest ...any) error
}

func scanOwner(s scanner) (*owner.Owner, error) {
	var o owner.Owner

	var phone, bankInfo, pixKey sql.NullString

	if err := s.Scan(
		&o.ID, &o.Name, &o.Email, &o.TaxID, &phone, &bankInfo, &pixKey,
		&o.PayoutAccountID, &o.CreatedAt, &o.UpdatedAt,
	); err != nil {
		return nil, err
	}

	o.Phone = phone.String
	o.BankInfo = bankInfo.String
	o.PixKey = pixKey.String

	return &o, nil
}

func (s *Store) CreateOwner(ctx context.Context, o *owner.Owner) error {
	query := `
		INSERT INTO owners (name, email, tax_id, phone, bank_info, pix_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		o.Name,
		o.Email,
		o.TaxID,
		o.Phone,
		o.BankInfo,
		o.PixKey,
	).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating owner: %w", err)
	}

	return nil
}

func (s *Store) GetOwner(ctx context.Context, id uuid.UUID) (*owner.Owner, error) {
	query := `SELECT ` + selectOwnerColumns + ` FROM owners o WHERE o.id = $1`

	o, err := scanOwner(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, owner.ErrNotFound
		}

		return nil, fmt.Errorf("getting owner: %w", err)
	}

	return o, nil
}

func (s *Store) ListOwners(ctx context.Context) ([]*owner.Owner, error) {
	query := `SELECT ` + selectOwnerColumns + ` FROM owners o ORDER BY o.name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing owners: %w", err)
	}
	defer rows.Close()

	var owners []*owner.Owner

	for rows.Next() {
		o, err := scanOwner(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning owner: %w", err)
		}

		owners = append(owners, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating owner rows: %w", err)
	}

	return owners, nil
}

func (s *Store) UpdateOwner(ctx context.Context, o *owner.Owner) error {
	query := `
		UPDATE owners
		SET name = $1, email = $2, tax_id = $3, phone = $4, bank_info = $5,
			pix_key = $6, updated_at = NOW()
		WHERE id = $7
	`

	res, err := s.db.ExecContext(ctx, query,
		o.Name,
		o.Email,
		o.TaxID,
		o.Phone,
		o.BankInfo,
		o.PixKey,
		o.ID,
	)
	if err != nil {
		return fmt.Errorf("updating owner: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return owner.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteOwner(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM owners WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting owner: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return owner.ErrNotFound
	}

	return nil
}

func (s *Store) SetPayoutAccountID(ctx context.Context, id uuid.UUID, accountID string) error {
	query := `
		UPDATE owners
		SET payout_account_id = $1, updated_at = NOW()
		WHERE id = $2
	`

	res, err := s.db.ExecContext(ctx, query, accountID, id)
	if err != nil {
		return fmt.Errorf("setting payout account: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return owner.ErrNotFound
	}

	return nil
}
