package payout

import (
	"context"
	"database/sql"
	"errors"

	"backoffice/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context, status Status) ([]Payout, error)
	GetByID(ctx context.Context, id uint) (*Payout, error)
	MarkPaid(ctx context.Context, id uint, method, reference string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const selectPayout = `
	SELECT p.id, p.store_id, s.name, p.amount, p.commission_percent, p.commission_min,
		p.commission_vat_percent, p.status, p.scheduled_at, p.paid_at, p.method, p.reference
	FROM payouts p
	INNER JOIN stores s ON s.id = p.store_id
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPayout(row rowScanner) (Payout, error) {
	var p Payout
	err := row.Scan(
		&p.ID, &p.StoreID, &p.StoreName, &p.Amount, &p.CommissionPercent, &p.CommissionMin,
		&p.CommissionVATPercent, &p.Status, &p.ScheduledAt, &p.PaidAt, &p.Method, &p.Reference,
	)
	return p, err
}

// List returns payouts, newest schedule first. An empty status lists all.
func (r *repository) List(ctx context.Context, status Status) ([]Payout, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "payout.List"),
		zap.String("status", string(status)),
	)

	rows, err := r.db.QueryContext(ctx,
		selectPayout+` WHERE ($1 = '' OR p.status = $1) ORDER BY p.scheduled_at DESC, p.id DESC`,
		string(status),
	)
	if err != nil {
		log.Error("failed to query payouts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var out []Payout
	for rows.Next() {
		p, err := scanPayout(rows)
		if err != nil {
			log.Error("failed to scan payout", zap.Error(err))
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		log.Error("payout rows error", zap.Error(err))
		return nil, err
	}

	return out, nil
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Payout, error) {
	p, err := scanPayout(r.db.QueryRowContext(ctx, selectPayout+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPayoutNotFound
		}
		logger.FromCtx(ctx).Error("failed to load payout", zap.Uint("payout_id", id), zap.Error(err))
		return nil, err
	}
	return &p, nil
}

// MarkPaid moves a pending payout to paid in a single conditional update so
// that a concurrent or repeated submission cannot overwrite the first
// method, reference and paid_at.
func (r *repository) MarkPaid(ctx context.Context, id uint, method, reference string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "payout.MarkPaid"),
		zap.Uint("payout_id", id),
	)

	res, err := r.db.ExecContext(ctx, `
		UPDATE payouts
		SET status = 'paid', method = $2, reference = $3, paid_at = NOW()
		WHERE id = $1 AND status = 'pending'
	`, id, method, reference)
	if err != nil {
		log.Error("failed to mark payout paid", zap.Error(err))
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 1 {
		log.Info("payout marked paid")
		return nil
	}

	var status Status
	err = r.db.QueryRowContext(ctx, `SELECT status FROM payouts WHERE id = $1`, id).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrPayoutNotFound
	}
	if err != nil {
		log.Error("failed to read payout status", zap.Error(err))
		return err
	}

	log.Info("payout already settled", zap.String("status", string(status)))
	return ErrAlreadyPaid
}
