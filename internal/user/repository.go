package user

import (
	"context"
	"database/sql"
	"errors"

	"backoffice/internal/db"
	"backoffice/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id uint) (*User, error)
	List(ctx context.Context) ([]User, error)
	Create(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User, passwordHash string) error
	Delete(ctx context.Context, id uint) error
	ListRoles(ctx context.Context) ([]Role, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const selectUser = `
	SELECT u.id, u.name, u.email, u.password_hash, u.role_id, r.name, u.active, u.created_at
	FROM users u
	INNER JOIN roles r ON r.id = u.role_id
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.RoleID, &u.RoleName, &u.Active, &u.CreatedAt)
	return u, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, selectUser+` WHERE LOWER(u.email) = LOWER($1)`, email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) GetByID(ctx context.Context, id uint) (*User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, selectUser+` WHERE u.id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to load user", zap.Uint("user_id", id), zap.Error(err))
		return nil, err
	}
	return &u, nil
}

func (r *repository) List(ctx context.Context) ([]User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "user.List"),
	)

	rows, err := r.db.QueryContext(ctx, selectUser+` ORDER BY u.name, u.id`)
	if err != nil {
		log.Error("failed to query users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var out []User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			log.Error("failed to scan user", zap.Error(err))
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *repository) Create(ctx context.Context, u *User) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (name, email, password_hash, role_id, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, u.Name, u.Email, u.PasswordHash, u.RoleID, u.Active).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return ErrEmailExists
		}
		logger.FromCtx(ctx).Error("db: failed to insert user", zap.String("email", u.Email), zap.Error(err))
		return err
	}
	return nil
}

// Update keeps the stored hash when passwordHash is empty.
func (r *repository) Update(ctx context.Context, u *User, passwordHash string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET name = $2, email = $3, role_id = $4, active = $5,
			password_hash = COALESCE(NULLIF($6, ''), password_hash)
		WHERE id = $1
	`, u.ID, u.Name, u.Email, u.RoleID, u.Active, passwordHash)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return ErrEmailExists
		}
		logger.FromCtx(ctx).Error("db: failed to update user", zap.Uint("user_id", u.ID), zap.Error(err))
		return err
	}
	return requireOneRow(res)
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return ErrUserInUse
		}
		logger.FromCtx(ctx).Error("db: failed to delete user", zap.Uint("user_id", id), zap.Error(err))
		return err
	}
	return requireOneRow(res)
}

func (r *repository) ListRoles(ctx context.Context) ([]Role, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM roles ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []Role
	for rows.Next() {
		var role Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

func requireOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrUserNotFound
	}
	return nil
}
