package payout

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalculate_Examples(t *testing.T) {
	t.Run("Percentage above floor", func(t *testing.T) {
		b := Calculate(d("100000"), d("5"), d("2000"), d("19"))

		assert.True(t, b.CommissionAmount.Equal(d("5000")), b.CommissionAmount.String())
		assert.True(t, b.CommissionVATAmount.Equal(d("950")), b.CommissionVATAmount.String())
		assert.True(t, b.CommissionGrossAmount.Equal(d("5950")), b.CommissionGrossAmount.String())
		assert.True(t, b.NetAmount.Equal(d("94050")), b.NetAmount.String())
		assert.False(t, b.FloorApplied())
		assert.False(t, b.Negative())
	})

	t.Run("Floor applies", func(t *testing.T) {
		b := Calculate(d("10000"), d("5"), d("2000"), d("19"))

		assert.True(t, b.CommissionAmount.Equal(d("2000")), b.CommissionAmount.String())
		assert.True(t, b.CommissionVATAmount.Equal(d("380")))
		assert.True(t, b.NetAmount.Equal(d("7620")))
		assert.True(t, b.FloorApplied())
	})

	t.Run("Floor exceeds amount is flagged not clamped", func(t *testing.T) {
		b := Calculate(d("1500"), d("5"), d("2000"), d("19"))

		assert.True(t, b.NetAmount.Equal(d("-880")), b.NetAmount.String())
		assert.True(t, b.Negative())
	})

	t.Run("Fractional cents keep full precision", func(t *testing.T) {
		b := Calculate(d("1234.57"), d("3.5"), d("0"), d("19"))

		assert.True(t, b.CommissionAmount.Equal(d("43.20995")), b.CommissionAmount.String())
		assert.True(t, b.CommissionVATAmount.Equal(d("8.2098905")), b.CommissionVATAmount.String())
		assert.Equal(t, "51.42", b.CommissionGrossAmount.StringFixed(2))
	})
}

func TestCalculate_Properties(t *testing.T) {
	amounts := []string{"0", "0.01", "99.99", "1500", "10000", "100000", "123456.78", "9999999.99"}
	percents := []string{"0", "0.5", "5", "12.75", "100"}
	mins := []string{"0", "1", "2000", "50000"}
	vats := []string{"0", "10.5", "19", "100"}

	for _, a := range amounts {
		for _, p := range percents {
			for _, m := range mins {
				for _, v := range vats {
					b := Calculate(d(a), d(p), d(m), d(v))
					raw := d(a).Mul(d(p)).Div(hundred)

					assert.True(t, b.CommissionAmount.GreaterThanOrEqual(d(m)), "commission >= min for %s/%s/%s/%s", a, p, m, v)
					assert.True(t, b.CommissionAmount.GreaterThanOrEqual(raw), "commission >= raw for %s/%s/%s/%s", a, p, m, v)
					assert.True(t, b.CommissionGrossAmount.Equal(b.CommissionAmount.Add(b.CommissionVATAmount)))
					assert.True(t, b.NetAmount.Equal(b.Amount.Sub(b.CommissionGrossAmount)))
				}
			}
		}
	}
}

func TestPayout_BreakdownUsesOwnTerms(t *testing.T) {
	p := Payout{
		Amount:               d("100000"),
		CommissionPercent:    d("5"),
		CommissionMin:        d("2000"),
		CommissionVATPercent: d("19"),
	}

	assert.True(t, p.Breakdown().NetAmount.Equal(d("94050")))
}

func TestSum(t *testing.T) {
	payouts := []Payout{
		{Amount: d("100000"), CommissionPercent: d("5"), CommissionMin: d("2000"), CommissionVATPercent: d("19")},
		{Amount: d("10000"), CommissionPercent: d("5"), CommissionMin: d("2000"), CommissionVATPercent: d("19")},
	}

	tot := Sum(payouts)

	assert.Equal(t, 2, tot.Count)
	assert.True(t, tot.Amount.Equal(d("110000")))
	assert.True(t, tot.CommissionAmount.Equal(d("7000")))
	assert.True(t, tot.CommissionVATAmount.Equal(d("1330")))
	assert.True(t, tot.CommissionGrossAmount.Equal(d("8330")))
	assert.True(t, tot.NetAmount.Equal(d("101670")))

	empty := Sum(nil)
	assert.Equal(t, 0, empty.Count)
	assert.True(t, empty.NetAmount.IsZero())
}
