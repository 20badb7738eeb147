package owner

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	CreateOwner(ctx context.Context, o *Owner) error
	GetOwner(ctx context.Context, id uuid.UUID) (*Owner, error)
	ListOwners(ctx context.Context) ([]*Owner, error)
	UpdateOwner(ctx context.Context, o *Owner) error
	DeleteOwner(ctx context.Context, id uuid.UUID) error
	SetPayoutAccountID(ctx context.Context, id uuid.UUID, accountID string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name     string
	Email    string
	TaxID    string
	Phone    string
	BankInfo string
	PixKey   string
}

// UpdateParams is an explicit partial update; nil fields are left untouched.
type UpdateParams struct {
	Name     *string
	Email    *string
	TaxID    *string
	Phone    *string
	BankInfo *string
	PixKey   *string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Owner, error) {
	o := &Owner{
		Name:     params.Name,
		Email:    params.Email,
		TaxID:    params.TaxID,
		Phone:    params.Phone,
		BankInfo: params.BankInfo,
		PixKey:   params.PixKey,
	}
	if err := s.repo.CreateOwner(ctx, o); err != nil {
		return nil, err
	}

	return o, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Owner, error) {
	return s.repo.GetOwner(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Owner, error) {
	return s.repo.ListOwners(ctx)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Owner, error) {
	o, err := s.repo.GetOwner(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		o.Name = *params.Name
	}

	if params.Email != nil {
		o.Email = *params.Email
	}

	if params.TaxID != nil {
		o.TaxID = *params.TaxID
	}

	if params.Phone != nil {
		o.Phone = *params.Phone
	}

	if params.BankInfo != nil {
		o.BankInfo = *params.BankInfo
	}

	if params.PixKey != nil {
		o.PixKey = *params.PixKey
	}

	if err := s.repo.UpdateOwner(ctx, o); err != nil {
		return nil, err
	}

	return o, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteOwner(ctx, id)
}
