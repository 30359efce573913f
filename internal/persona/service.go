package persona

import (
	"context"
	"strings"

	"backoffice/internal/validation"
)

type Service interface {
	List(ctx context.Context) ([]Persona, error)
	Get(ctx context.Context, id uint) (*Persona, error)
	Create(ctx context.Context, input Input) (*Persona, error)
	Update(ctx context.Context, input Input) error
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]Persona, error) {
	return s.repo.List(ctx)
}

func (s *service) Get(ctx context.Context, id uint) (*Persona, error) {
	if id == 0 {
		return nil, ErrPersonaNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, input Input) (*Persona, error) {
	input = normalize(input)
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	p := &Persona{Name: input.Name, Email: input.Email, Phone: input.Phone, Position: input.Position}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Update(ctx context.Context, input Input) error {
	if input.ID == 0 {
		return ErrPersonaNotFound
	}
	input = normalize(input)
	if err := validation.Struct(input); err != nil {
		return err
	}
	return s.repo.Update(ctx, &Persona{ID: input.ID, Name: input.Name, Email: input.Email, Phone: input.Phone, Position: input.Position})
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrPersonaNotFound
	}
	return s.repo.Delete(ctx, id)
}

func normalize(in Input) Input {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	in.Position = strings.TrimSpace(in.Position)
	return in
}
