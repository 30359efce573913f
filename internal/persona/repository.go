package persona

import (
	"context"
	"database/sql"
	"errors"

	"backoffice/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context) ([]Persona, error)
	GetByID(ctx context.Context, id uint) (*Persona, error)
	Create(ctx context.Context, p *Persona) error
	Update(ctx context.Context, p *Persona) error
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const selectPersona = `SELECT id, name, email, phone, position, created_at FROM personas`

func (r *repository) List(ctx context.Context) ([]Persona, error) {
	rows, err := r.db.QueryContext(ctx, selectPersona+` ORDER BY name, id`)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to query personas", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var out []Persona
	for rows.Next() {
		var p Persona
		if err := rows.Scan(&p.ID, &p.Name, &p.Email, &p.Phone, &p.Position, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Persona, error) {
	var p Persona
	err := r.db.QueryRowContext(ctx, selectPersona+` WHERE id = $1`, id).
		Scan(&p.ID, &p.Name, &p.Email, &p.Phone, &p.Position, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPersonaNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Create(ctx context.Context, p *Persona) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO personas (name, email, phone, position)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, p.Name, p.Email, p.Phone, p.Position).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to insert persona", zap.Error(err))
	}
	return err
}

func (r *repository) Update(ctx context.Context, p *Persona) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE personas SET name = $2, email = $3, phone = $4, position = $5 WHERE id = $1
	`, p.ID, p.Name, p.Email, p.Phone, p.Position)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to update persona", zap.Uint("persona_id", p.ID), zap.Error(err))
		return err
	}
	return affected(res)
}

// Delete unassigns the persona's tasks through ON DELETE SET NULL.
func (r *repository) Delete(ctx context.Context, id uint) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM personas WHERE id = $1`, id)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to delete persona", zap.Uint("persona_id", id), zap.Error(err))
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
		return ErrPersonaNotFound
	}
	return nil
}
