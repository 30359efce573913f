package task

import (
	"context"
	"database/sql"
	"errors"

	"backoffice/internal/db"
	"backoffice/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	// List returns every task when projectID is 0.
	List(ctx context.Context, projectID uint) ([]Task, error)
	GetByID(ctx context.Context, id uint) (*Task, error)
	Create(ctx context.Context, t *Task) error
	Update(ctx context.Context, t *Task) error
	Delete(ctx context.Context, id uint) error
	CountByStatus(ctx context.Context) (map[Status]int, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const selectTask = `
	SELECT t.id, t.project_id, p.code, p.name, t.title, t.description, t.status,
		t.assignee_id, pe.name, t.due_date, t.created_at, t.updated_at
	FROM tasks t
	INNER JOIN projects p ON p.id = t.project_id
	LEFT JOIN personas pe ON pe.id = t.assignee_id
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (Task, error) {
	var t Task
	err := row.Scan(
		&t.ID, &t.ProjectID, &t.ProjectCode, &t.ProjectName, &t.Title, &t.Description, &t.Status,
		&t.AssigneeID, &t.AssigneeName, &t.DueDate, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

func (r *repository) List(ctx context.Context, projectID uint) ([]Task, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "task.List"),
	)

	rows, err := r.db.QueryContext(ctx, selectTask+`
		WHERE ($1 = 0 OR t.project_id = $1)
		ORDER BY t.due_date ASC NULLS LAST, t.id DESC
	`, projectID)
	if err != nil {
		log.Error("failed to query tasks", zap.Uint("project_id", projectID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var out []Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			log.Error("failed to scan task", zap.Error(err))
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Task, error) {
	t, err := scanTask(r.db.QueryRowContext(ctx, selectTask+` WHERE t.id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) Create(ctx context.Context, t *Task) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO tasks (project_id, title, description, status, assignee_id, due_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, t.ProjectID, t.Title, t.Description, t.Status, t.AssigneeID, t.DueDate).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if db.IsForeignKeyViolation(err) {
		return ErrUnknownReference
	}
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to insert task", zap.Uint("project_id", t.ProjectID), zap.Error(err))
	}
	return err
}

func (r *repository) Update(ctx context.Context, t *Task) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE tasks
		SET project_id = $2, title = $3, description = $4, status = $5, assignee_id = $6, due_date = $7, updated_at = NOW()
		WHERE id = $1
	`, t.ID, t.ProjectID, t.Title, t.Description, t.Status, t.AssigneeID, t.DueDate)
	if db.IsForeignKeyViolation(err) {
		return ErrUnknownReference
	}
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to update task", zap.Uint("task_id", t.ID), zap.Error(err))
		return err
	}
	return affected(res)
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to delete task", zap.Uint("task_id", id), zap.Error(err))
		return err
	}
	return affected(res)
}

func (r *repository) CountByStatus(ctx context.Context) (map[Status]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM tasks GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[Status]int, len(Statuses))
	for rows.Next() {
		var (
			s Status
			n int
		)
		if err := rows.Scan(&s, &n); err != nil {
			return nil, err
		}
		counts[s] = n
	}
	return counts, rows.Err()
}

func affected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrTaskNotFound
	}
	return nil
}
