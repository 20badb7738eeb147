package property

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	CreateProperty(ctx context.Context, p *Property) error
	GetProperty(ctx context.Context, id uuid.UUID) (*Property, error)
	ListProperties(ctx context.Context) ([]*Property, error)
	UpdateProperty(ctx context.Context, p *Property) error
	DeleteProperty(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Address     string
	Description string
	OwnerID     uuid.UUID
}

type UpdateParams struct {
	Address     *string
	Description *string
	OwnerID     *uuid.UUID
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Property, error) {
	p := &Property{
		Address:     params.Address,
		Description: params.Description,
		OwnerID:     params.OwnerID,
	}
	if err := s.repo.CreateProperty(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Property, error) {
	return s.repo.GetProperty(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Property, error) {
	return s.repo.ListProperties(ctx)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Property, error) {
	p, err := s.repo.GetProperty(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Address != nil {
		p.Address = *params.Address
	}

	if params.Description != nil {
		p.Description = *params.Description
	}

	if params.OwnerID != nil {
		p.OwnerID = *params.OwnerID
	}

	if err := s.repo.UpdateProperty(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteProperty(ctx, id)
}
