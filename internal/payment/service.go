package payment

import (
	"context"
	"strings"

	"backoffice/internal/validation"
)

type Service interface {
	ListPayments(ctx context.Context, status Status) ([]Payment, error)
	ListByOrder(ctx context.Context, orderID uint) ([]Payment, error)
	MarkPaid(ctx context.Context, input MarkPaidInput) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListPayments(ctx context.Context, status Status) ([]Payment, error) {
	if status != StatusPending && status != StatusPaid {
		status = ""
	}
	return s.repo.List(ctx, status)
}

func (s *service) ListByOrder(ctx context.Context, orderID uint) ([]Payment, error) {
	return s.repo.ListByOrder(ctx, orderID)
}

func (s *service) MarkPaid(ctx context.Context, input MarkPaidInput) error {
	input.TransactionID = strings.TrimSpace(input.TransactionID)
	if err := validation.Struct(input); err != nil {
		return err
	}
	return s.repo.MarkPaid(ctx, input.PaymentID, input.TransactionID)
}
