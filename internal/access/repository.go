package access

import (
	"context"
	"database/sql"

	"backoffice/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	HasPermission(ctx context.Context, userID uint, name string) (bool, error)
	HasMenu(ctx context.Context, userID uint, name string) (bool, error)
	MenusForUser(ctx context.Context, userID uint) ([]Menu, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) HasPermission(ctx context.Context, userID uint, name string) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1
			FROM users u
			INNER JOIN role_permissions rp ON rp.role_id = u.role_id
			INNER JOIN permissions p ON p.id = rp.permission_id
			WHERE u.id = $1 AND u.active AND p.name = $2
		)
	`, userID, name).Scan(&ok)
	return ok, err
}

func (r *repository) HasMenu(ctx context.Context, userID uint, name string) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1
			FROM users u
			INNER JOIN role_menus rm ON rm.role_id = u.role_id
			INNER JOIN menus m ON m.id = rm.menu_id
			WHERE u.id = $1 AND u.active AND m.name = $2
		)
	`, userID, name).Scan(&ok)
	return ok, err
}

func (r *repository) MenusForUser(ctx context.Context, userID uint) ([]Menu, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT m.name, m.url, m.icon, m.display
		FROM users u
		INNER JOIN role_menus rm ON rm.role_id = u.role_id
		INNER JOIN menus m ON m.id = rm.menu_id
		WHERE u.id = $1 AND u.active
		ORDER BY m.sort_order, m.id
	`, userID)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to query menus", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var menus []Menu
	for rows.Next() {
		var m Menu
		if err := rows.Scan(&m.Name, &m.URL, &m.Icon, &m.Display); err != nil {
			logger.FromCtx(ctx).Error("failed to scan menu", zap.Uint("user_id", userID), zap.Error(err))
			return nil, err
		}
		menus = append(menus, m)
	}
	if err := rows.Err(); err != nil {
		logger.FromCtx(ctx).Error("failed to iterate menus", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}
	return menus, nil
}
