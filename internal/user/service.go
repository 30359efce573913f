package user

import (
	"context"
	"errors"
	"strings"

	"backoffice/internal/logger"
	"backoffice/internal/validation"

	"go.uber.org/zap"
)

type Service interface {
	Authenticate(ctx context.Context, email, password string) (*User, error)
	List(ctx context.Context) ([]User, error)
	Get(ctx context.Context, id uint) (*User, error)
	Create(ctx context.Context, input CreateInput) (*User, error)
	Update(ctx context.Context, input UpdateInput) error
	Delete(ctx context.Context, id, actorID uint) error
	ListRoles(ctx context.Context) ([]Role, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Authenticate collapses unknown email, wrong password and inactive account
// into ErrInvalidCredentials.
func (s *service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	log := logger.FromCtx(ctx)
	email = strings.TrimSpace(email)

	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	u, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, ErrUserNotFound) {
		log.Warn("login attempt for unknown email", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		log.Error("failed to load user for login", zap.Error(err))
		return nil, err
	}

	if !CheckPasswordHash(password, u.PasswordHash) {
		log.Warn("invalid password", zap.Uint("user_id", u.ID))
		return nil, ErrInvalidCredentials
	}
	if !u.Active {
		log.Warn("inactive user login rejected", zap.Uint("user_id", u.ID))
		return nil, ErrInvalidCredentials
	}

	return u, nil
}

func (s *service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *service) Get(ctx context.Context, id uint) (*User, error) {
	if id == 0 {
		return nil, ErrUserNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, input CreateInput) (*User, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	hashed, err := HashPassword(input.Password)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to hash password", zap.Error(err))
		return nil, err
	}

	u := &User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashed,
		RoleID:       input.RoleID,
		Active:       input.Active,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("user created", zap.Uint("new_user_id", u.ID), zap.String("email", u.Email))
	return u, nil
}

func (s *service) Update(ctx context.Context, input UpdateInput) error {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if err := validation.Struct(input); err != nil {
		return err
	}

	var hashed string
	if input.Password != "" {
		h, err := HashPassword(input.Password)
		if err != nil {
			return err
		}
		hashed = h
	}

	return s.repo.Update(ctx, &User{
		ID:     input.ID,
		Name:   input.Name,
		Email:  input.Email,
		RoleID: input.RoleID,
		Active: input.Active,
	}, hashed)
}

func (s *service) Delete(ctx context.Context, id, actorID uint) error {
	if id == 0 {
		return ErrUserNotFound
	}
	if id == actorID {
		return ErrSelfDelete
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) ListRoles(ctx context.Context) ([]Role, error) {
	return s.repo.ListRoles(ctx)
}
