package payout

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Breakdown is the settlement of one payout. Values are kept at full
// precision; rounding to cents happens only when they are displayed.
type Breakdown struct {
	Amount                decimal.Decimal
	CommissionPercent     decimal.Decimal
	CommissionMin         decimal.Decimal
	CommissionAmount      decimal.Decimal
	CommissionVATPercent  decimal.Decimal
	CommissionVATAmount   decimal.Decimal
	CommissionGrossAmount decimal.Decimal
	NetAmount             decimal.Decimal
}

// Calculate settles amount against a store's commission terms:
//
//	commission = max(amount * percent / 100, min)
//	vat        = commission * vatPercent / 100
//	gross      = commission + vat
//	net        = amount - gross
//
// net is not clamped; see Negative.
func Calculate(amount, percent, min, vatPercent decimal.Decimal) Breakdown {
	commission := decimal.Max(amount.Mul(percent).Div(hundred), min)
	vat := commission.Mul(vatPercent).Div(hundred)
	gross := commission.Add(vat)

	return Breakdown{
		Amount:                amount,
		CommissionPercent:     percent,
		CommissionMin:         min,
		CommissionAmount:      commission,
		CommissionVATPercent:  vatPercent,
		CommissionVATAmount:   vat,
		CommissionGrossAmount: gross,
		NetAmount:             amount.Sub(gross),
	}
}

// Negative reports a settlement where the commission floor plus VAT exceeds
// the gross amount, leaving the store owing the platform.
func (b Breakdown) Negative() bool {
	return b.NetAmount.IsNegative()
}

// FloorApplied reports whether the minimum commission replaced the
// percentage-based one.
func (b Breakdown) FloorApplied() bool {
	return b.CommissionMin.GreaterThan(b.Amount.Mul(b.CommissionPercent).Div(hundred))
}
