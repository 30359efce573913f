package project

import (
	"context"
	"strings"

	"backoffice/internal/validation"
)

type Service interface {
	List(ctx context.Context) ([]Project, error)
	Get(ctx context.Context, id uint) (*Project, error)
	Create(ctx context.Context, input Input) (*Project, error)
	Update(ctx context.Context, input Input) error
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]Project, error) {
	return s.repo.List(ctx)
}

func (s *service) Get(ctx context.Context, id uint) (*Project, error) {
	if id == 0 {
		return nil, ErrProjectNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, input Input) (*Project, error) {
	input = normalize(input)
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	p := input.toProject()
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Update(ctx context.Context, input Input) error {
	if input.ID == 0 {
		return ErrProjectNotFound
	}
	input = normalize(input)
	if err := validation.Struct(input); err != nil {
		return err
	}
	return s.repo.Update(ctx, input.toProject())
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrProjectNotFound
	}
	return s.repo.Delete(ctx, id)
}

// Codes are stored upper-case so uniqueness is case-insensitive.
func normalize(in Input) Input {
	in.Code = strings.ToUpper(strings.TrimSpace(in.Code))
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	return in
}
