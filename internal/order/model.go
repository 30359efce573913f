package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID               uint
	CreatedAt        time.Time
	UpdatedAt        time.Time
	CustomerName     string
	CustomerEmail    string
	CustomerPhone    *string
	ShippingAddress  *string
	CouponCode       *string
	Subtotal         decimal.Decimal
	Discount         decimal.Decimal
	Shipping         decimal.Decimal
	Total            decimal.Decimal
	PaymentMethod    string
	PaymentStatus    string
	PaymentReference *string
}

// ComputedTotal is subtotal - discount + shipping, the value Total must hold.
func (o Order) ComputedTotal() decimal.Decimal {
	return o.Subtotal.Sub(o.Discount).Add(o.Shipping)
}

// TotalConsistent reports whether the stored total matches its parts.
func (o Order) TotalConsistent() bool {
	return o.Total.Equal(o.ComputedTotal())
}

type OrderItem struct {
	ID           uint
	OrderID      uint
	ProductName  string
	StoreName    string
	Quantity     int
	UnitPrice    decimal.Decimal
	LineShipping decimal.Decimal
}

func (i OrderItem) LineSubtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

func (i OrderItem) LineTotal() decimal.Decimal {
	return i.LineSubtotal().Add(i.LineShipping)
}

// ItemsSubtotal sums the line subtotals of items.
func ItemsSubtotal(items []OrderItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.LineSubtotal())
	}
	return sum
}

type Filter struct {
	Query         string
	PaymentStatus string
	Page          int
	PageSize      int
}

func (f Filter) normalized() Filter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 || f.PageSize > 100 {
		f.PageSize = 30
	}
	if f.PaymentStatus != "pending" && f.PaymentStatus != "paid" {
		f.PaymentStatus = ""
	}
	return f
}

func (f Filter) offset() int {
	return (f.Page - 1) * f.PageSize
}

type Page struct {
	Orders     []Order
	Total      int
	Page       int
	TotalPages int
}
