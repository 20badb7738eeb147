package tenant

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	CreateTenant(ctx context.Context, t *Tenant) error
	GetTenant(ctx context.Context, id uuid.UUID) (*Tenant, error)
	ListTenants(ctx context.Context) ([]*Tenant, error)
	UpdateTenant(ctx context.Context, t *Tenant) error
	DeleteTenant(ctx context.Context, id uuid.UUID) error
	SetCustomerID(ctx context.Context, id uuid.UUID, customerID string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name  string
	Email string
	TaxID string
	Phone string
}

type UpdateParams struct {
	Name  *string
	Email *string
	TaxID *string
	Phone *string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Tenant, error) {
	t := &Tenant{
		Name:  params.Name,
		Email: params.Email,
		TaxID: params.TaxID,
		Phone: params.Phone,
	}
	if err := s.repo.CreateTenant(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Tenant, error) {
	return s.repo.GetTenant(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Tenant, error) {
	return s.repo.ListTenants(ctx)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Tenant, error) {
	t, err := s.repo.GetTenant(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		t.Name = *params.Name
	}

	if params.Email != nil {
		t.Email = *params.Email
	}

	if params.TaxID != nil {
		t.TaxID = *params.TaxID
	}

	if params.Phone != nil {
		t.Phone = *params.Phone
	}

	if err := s.repo.UpdateTenant(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteTenant(ctx, id)
}
