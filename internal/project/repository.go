package project

import (
	"context"
	"database/sql"
	"errors"

	"backoffice/internal/db"
	"backoffice/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context) ([]Project, error)
	GetByID(ctx context.Context, id uint) (*Project, error)
	Create(ctx context.Context, p *Project) error
	Update(ctx context.Context, p *Project) error
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const selectProject = `
	SELECT id, code, name, description, status, start_date, end_date, created_at, updated_at
	FROM projects
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (Project, error) {
	var p Project
	err := row.Scan(&p.ID, &p.Code, &p.Name, &p.Description, &p.Status, &p.StartDate, &p.EndDate, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *repository) List(ctx context.Context) ([]Project, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "project.List"),
	)

	rows, err := r.db.QueryContext(ctx, selectProject+` ORDER BY start_date DESC, id DESC`)
	if err != nil {
		log.Error("failed to query projects", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var out []Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			log.Error("failed to scan project", zap.Error(err))
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Project, error) {
	p, err := scanProject(r.db.QueryRowContext(ctx, selectProject+` WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Create(ctx context.Context, p *Project) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO projects (code, name, description, status, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, p.Code, p.Name, p.Description, p.Status, p.StartDate, p.EndDate).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if db.IsUniqueViolation(err) {
		return ErrCodeExists
	}
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to insert project", zap.String("code", p.Code), zap.Error(err))
	}
	return err
}

func (r *repository) Update(ctx context.Context, p *Project) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE projects
		SET code = $2, name = $3, description = $4, status = $5, start_date = $6, end_date = $7, updated_at = NOW()
		WHERE id = $1
	`, p.ID, p.Code, p.Name, p.Description, p.Status, p.StartDate, p.EndDate)
	if db.IsUniqueViolation(err) {
		return ErrCodeExists
	}
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to update project", zap.Uint("project_id", p.ID), zap.Error(err))
		return err
	}
	return affected(res)
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if db.IsForeignKeyViolation(err) {
		return ErrProjectInUse
	}
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to delete project", zap.Uint("project_id", id), zap.Error(err))
		return err
	}
	return affected(res)
}

func affected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrProjectNotFound
	}
	return nil
}
