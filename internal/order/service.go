package order

import (
	"context"

	"backoffice/internal/payment"
)

type Detail struct {
	Order    Order
	Items    []OrderItem
	Payments []payment.Payment
}

type Service interface {
	ListOrders(ctx context.Context, f Filter) (*Page, error)
	GetOrderDetail(ctx context.Context, id uint) (*Detail, error)
}

type service struct {
	repo        Repository
	paymentRepo payment.Repository
}

func NewService(repo Repository, payRepo payment.Repository) Service {
	return &service{
		repo:        repo,
		paymentRepo: payRepo,
	}
}

func (s *service) ListOrders(ctx context.Context, f Filter) (*Page, error) {
	f = f.normalized()

	total, err := s.repo.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	orders, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}

	pages := (total + f.PageSize - 1) / f.PageSize
	if pages < 1 {
		pages = 1
	}

	return &Page{
		Orders:     orders,
		Total:      total,
		Page:       f.Page,
		TotalPages: pages,
	}, nil
}

func (s *service) GetOrderDetail(ctx context.Context, id uint) (*Detail, error) {
	if id == 0 {
		return nil, ErrOrderNotFound
	}

	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.ListItems(ctx, id)
	if err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.ListByOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	return &Detail{Order: *o, Items: items, Payments: payments}, nil
}
