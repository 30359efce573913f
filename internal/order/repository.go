package order

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"backoffice/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context, f Filter) ([]Order, error)
	Count(ctx context.Context, f Filter) (int, error)
	GetByID(ctx context.Context, id uint) (*Order, error)
	ListItems(ctx context.Context, orderID uint) ([]OrderItem, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const selectOrder = `
	SELECT id, created_at, updated_at, customer_name, customer_email, customer_phone,
		shipping_address, coupon_code, subtotal, discount, shipping, total,
		payment_method, payment_status, payment_reference
	FROM orders
`

// $1 is the search term, $2 the payment status; both match everything when empty.
const orderFilter = `
	WHERE ($1 = '' OR customer_name ILIKE '%' || $1 || '%' OR customer_email ILIKE '%' || $1 || '%' OR CAST(id AS TEXT) = $1)
	AND ($2 = '' OR payment_status = $2)
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (Order, error) {
	var o Order
	err := row.Scan(
		&o.ID, &o.CreatedAt, &o.UpdatedAt, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone,
		&o.ShippingAddress, &o.CouponCode, &o.Subtotal, &o.Discount, &o.Shipping, &o.Total,
		&o.PaymentMethod, &o.PaymentStatus, &o.PaymentReference,
	)
	return o, err
}

func (r *repository) List(ctx context.Context, f Filter) ([]Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "order.List"),
	)

	rows, err := r.db.QueryContext(ctx,
		selectOrder+orderFilter+` ORDER BY created_at DESC, id DESC LIMIT $3 OFFSET $4`,
		strings.TrimSpace(f.Query), f.PaymentStatus, f.PageSize, f.offset(),
	)
	if err != nil {
		log.Error("failed to query orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var out []Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			log.Error("failed to scan order", zap.Error(err))
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *repository) Count(ctx context.Context, f Filter) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM orders`+orderFilter,
		strings.TrimSpace(f.Query), f.PaymentStatus,
	).Scan(&n)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to count orders", zap.Error(err))
	}
	return n, err
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Order, error) {
	o, err := scanOrder(r.db.QueryRowContext(ctx, selectOrder+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		logger.FromCtx(ctx).Error("failed to load order", zap.Uint("order_id", id), zap.Error(err))
		return nil, err
	}
	return &o, nil
}

func (r *repository) ListItems(ctx context.Context, orderID uint) ([]OrderItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, product_name, store_name, quantity, unit_price, shipping
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`, orderID)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to query order items", zap.Uint("order_id", orderID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []OrderItem
	for rows.Next() {
		var it OrderItem
		if err := rows.Scan(
			&it.ID, &it.OrderID, &it.ProductName, &it.StoreName, &it.Quantity, &it.UnitPrice, &it.LineShipping,
		); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
