package payout

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

// Methods accepted when settling a payout.
var Methods = []string{"transfer", "cash", "check", "other"}

type Payout struct {
	ID                   uint
	StoreID              uint
	StoreName            string
	Amount               decimal.Decimal
	CommissionPercent    decimal.Decimal
	CommissionMin        decimal.Decimal
	CommissionVATPercent decimal.Decimal
	Status               Status
	ScheduledAt          time.Time
	PaidAt               *time.Time
	Method               *string
	Reference            *string
}

func (p Payout) Breakdown() Breakdown {
	return Calculate(p.Amount, p.CommissionPercent, p.CommissionMin, p.CommissionVATPercent)
}

func (p Payout) IsPaid() bool {
	return p.Status == StatusPaid
}

type MarkPaidInput struct {
	PayoutID  uint   `form:"payout_id" validate:"required"`
	Method    string `form:"method" validate:"required,oneof=transfer cash check other"`
	Reference string `form:"reference" validate:"required,max=120"`
}

// Totals aggregates the breakdowns of a payout listing.
type Totals struct {
	Count                 int
	Amount                decimal.Decimal
	CommissionAmount      decimal.Decimal
	CommissionVATAmount   decimal.Decimal
	CommissionGrossAmount decimal.Decimal
	NetAmount             decimal.Decimal
}

func Sum(payouts []Payout) Totals {
	var t Totals
	for _, p := range payouts {
		b := p.Breakdown()
		t.Count++
		t.Amount = t.Amount.Add(b.Amount)
		t.CommissionAmount = t.CommissionAmount.Add(b.CommissionAmount)
		t.CommissionVATAmount = t.CommissionVATAmount.Add(b.CommissionVATAmount)
		t.CommissionGrossAmount = t.CommissionGrossAmount.Add(b.CommissionGrossAmount)
		t.NetAmount = t.NetAmount.Add(b.NetAmount)
	}
	return t
}
