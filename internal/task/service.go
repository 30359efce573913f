package task

import (
	"context"
	"strings"

	"backoffice/internal/validation"
)

type Service interface {
	List(ctx context.Context, projectID uint) ([]Task, error)
	Get(ctx context.Context, id uint) (*Task, error)
	Create(ctx context.Context, input Input) (*Task, error)
	Update(ctx context.Context, input Input) error
	Delete(ctx context.Context, id uint) error
	Summary(ctx context.Context) (map[Status]int, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, projectID uint) ([]Task, error) {
	return s.repo.List(ctx, projectID)
}

func (s *service) Get(ctx context.Context, id uint) (*Task, error) {
	if id == 0 {
		return nil, ErrTaskNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, input Input) (*Task, error) {
	input = normalize(input)
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	t := input.toTask()
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *service) Update(ctx context.Context, input Input) error {
	if input.ID == 0 {
		return ErrTaskNotFound
	}
	input = normalize(input)
	if err := validation.Struct(input); err != nil {
		return err
	}
	return s.repo.Update(ctx, input.toTask())
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrTaskNotFound
	}
	return s.repo.Delete(ctx, id)
}

// Summary always carries every status, zero when no task has it.
func (s *service) Summary(ctx context.Context) (map[Status]int, error) {
	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	if counts == nil {
		counts = make(map[Status]int, len(Statuses))
	}
	for _, st := range Statuses {
		if _, ok := counts[st]; !ok {
			counts[st] = 0
		}
	}
	return counts, nil
}

func normalize(in Input) Input {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	if in.AssigneeID != nil && *in.AssigneeID == 0 {
		in.AssigneeID = nil
	}
	return in
}
