package access

import (
	"context"

	"backoffice/internal/logger"

	"go.uber.org/zap"
)

// Service answers "may this user see/do X". Every call goes to the store;
// there is no cache, so a role change applies on the next request.
//
// User id 0 means no session and is never granted anything. Store failures
// are logged and answered as "not granted".
type Service interface {
	HasPermission(ctx context.Context, userID uint, name string) bool
	HasMenuAccess(ctx context.Context, userID uint, name string) bool
	GetUserMenus(ctx context.Context, userID uint) []Menu
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) HasPermission(ctx context.Context, userID uint, name string) bool {
	if userID == 0 || name == "" {
		return false
	}
	ok, err := s.repo.HasPermission(ctx, userID, name)
	if err != nil {
		logger.FromCtx(ctx).Error("permission lookup failed",
			zap.String("permission", name),
			zap.Error(err),
		)
		return false
	}
	return ok
}

func (s *service) HasMenuAccess(ctx context.Context, userID uint, name string) bool {
	if userID == 0 || name == "" {
		return false
	}
	ok, err := s.repo.HasMenu(ctx, userID, name)
	if err != nil {
		logger.FromCtx(ctx).Error("menu lookup failed",
			zap.String("menu", name),
			zap.Error(err),
		)
		return false
	}
	return ok
}

func (s *service) GetUserMenus(ctx context.Context, userID uint) []Menu {
	if userID == 0 {
		return []Menu{}
	}
	menus, err := s.repo.MenusForUser(ctx, userID)
	if err != nil {
		logger.FromCtx(ctx).Error("menu listing failed",
			zap.Uint("user_id", userID),
			zap.Error(err),
		)
		return []Menu{}
	}
	if menus == nil {
		return []Menu{}
	}
	return menus
}
