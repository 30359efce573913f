package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

type Payment struct {
	ID            uint
	OrderID       uint
	CustomerName  string
	Method        string
	Amount        decimal.Decimal
	Status        Status
	TransactionID *string
	TransferCode  *string
	PaidAt        *time.Time
	CreatedAt     time.Time
}

func (p Payment) IsPaid() bool {
	return p.Status == StatusPaid
}

// Reference is the identifier shown to the admin: the gateway transaction
// id when known, otherwise the bank transfer code.
func (p Payment) Reference() string {
	if p.TransactionID != nil && *p.TransactionID != "" {
		return *p.TransactionID
	}
	if p.TransferCode != nil {
		return *p.TransferCode
	}
	return ""
}

type MarkPaidInput struct {
	PaymentID     uint   `form:"payment_id" validate:"required"`
	TransactionID string `form:"transaction_id" validate:"max=120"`
}
