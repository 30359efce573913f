package payout

import (
	"context"
	"strings"

	"backoffice/internal/validation"
)

type Service interface {
	ListPayouts(ctx context.Context, status Status) ([]Payout, error)
	GetPayout(ctx context.Context, id uint) (*Payout, error)
	MarkPaid(ctx context.Context, input MarkPaidInput) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListPayouts(ctx context.Context, status Status) ([]Payout, error) {
	switch status {
	case "", StatusPending, StatusPaid:
	default:
		status = ""
	}
	return s.repo.List(ctx, status)
}

func (s *service) GetPayout(ctx context.Context, id uint) (*Payout, error) {
	if id == 0 {
		return nil, ErrPayoutNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) MarkPaid(ctx context.Context, input MarkPaidInput) error {
	input.Method = strings.TrimSpace(input.Method)
	input.Reference = strings.TrimSpace(input.Reference)
	if err := validation.Struct(input); err != nil {
		return err
	}
	return s.repo.MarkPaid(ctx, input.PayoutID, input.Method, input.Reference)
}
