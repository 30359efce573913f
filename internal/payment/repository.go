package payment

import (
	"context"
	"database/sql"
	"errors"

	"backoffice/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context, status Status) ([]Payment, error)
	ListByOrder(ctx context.Context, orderID uint) ([]Payment, error)
	MarkPaid(ctx context.Context, id uint, transactionID string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const selectPayment = `
	SELECT p.id, p.order_id, o.customer_name, p.method, p.amount, p.status,
		p.transaction_id, p.transfer_code, p.paid_at, p.created_at
	FROM payments p
	INNER JOIN orders o ON o.id = p.order_id
`

func (r *repository) List(ctx context.Context, status Status) ([]Payment, error) {
	return r.query(ctx, "payment.List",
		selectPayment+` WHERE ($1 = '' OR p.status = $1) ORDER BY p.created_at DESC, p.id DESC`,
		string(status),
	)
}

func (r *repository) ListByOrder(ctx context.Context, orderID uint) ([]Payment, error) {
	return r.query(ctx, "payment.ListByOrder",
		selectPayment+` WHERE p.order_id = $1 ORDER BY p.id`,
		orderID,
	)
}

func (r *repository) query(ctx context.Context, method, q string, args ...any) ([]Payment, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", method),
	)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		log.Error("failed to query payments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var out []Payment
	for rows.Next() {
		var p Payment
		if err := rows.Scan(
			&p.ID, &p.OrderID, &p.CustomerName, &p.Method, &p.Amount, &p.Status,
			&p.TransactionID, &p.TransferCode, &p.PaidAt, &p.CreatedAt,
		); err != nil {
			log.Error("failed to scan payment", zap.Error(err))
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// MarkPaid settles a pending payment and its order in one transaction. The
// status guard makes repeated submissions a no-op reported as ErrAlreadyPaid.
// An empty transactionID keeps whatever id was stored at checkout.
func (r *repository) MarkPaid(ctx context.Context, id uint, transactionID string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "payment.MarkPaid"),
		zap.Uint("payment_id", id),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin tx", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE payments
		SET status = 'paid', transaction_id = COALESCE(NULLIF($2, ''), transaction_id), paid_at = NOW()
		WHERE id = $1 AND status = 'pending'
	`, id, transactionID)
	if err != nil {
		log.Error("failed to mark payment paid", zap.Error(err))
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		var status Status
		err := tx.QueryRowContext(ctx, `SELECT status FROM payments WHERE id = $1`, id).Scan(&status)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrPaymentNotFound
		}
		if err != nil {
			log.Error("failed to read payment status", zap.Error(err))
			return err
		}
		return ErrAlreadyPaid
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE orders
		SET payment_status = 'paid', payment_reference = COALESCE(NULLIF($2, ''), payment_reference)
		WHERE id = (SELECT order_id FROM payments WHERE id = $1)
	`, id, transactionID); err != nil {
		log.Error("failed to sync order payment status", zap.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit", zap.Error(err))
		return err
	}

	log.Info("payment marked paid")
	return nil
}
