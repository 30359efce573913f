package payout

import (
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Payouts"

var exportHeader = []any{
	"ID", "Store", "Scheduled", "Status", "Amount", "Commission %", "Commission min",
	"Commission", "VAT %", "VAT", "Commission + VAT", "Net", "Paid at", "Method", "Reference",
}

// WriteXLSX writes a settlement report of payouts to w, one row per payout
// plus a totals row. Money columns are rounded to cents.
func WriteXLSX(w io.Writer, payouts []Payout) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return err
	}

	for i, p := range payouts {
		b := p.Breakdown()
		paidAt := ""
		if p.PaidAt != nil {
			paidAt = p.PaidAt.Format("2006-01-02 15:04")
		}
		row := []any{
			p.ID, p.StoreName, p.ScheduledAt.Format("2006-01-02"), string(p.Status),
			cents(b.Amount), b.CommissionPercent.InexactFloat64(), cents(b.CommissionMin),
			cents(b.CommissionAmount), b.CommissionVATPercent.InexactFloat64(), cents(b.CommissionVATAmount),
			cents(b.CommissionGrossAmount), cents(b.NetAmount), paidAt, deref(p.Method), deref(p.Reference),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return err
		}
	}

	t := Sum(payouts)
	totals := []any{
		"Total", t.Count, "", "", cents(t.Amount), "", "",
		cents(t.CommissionAmount), "", cents(t.CommissionVATAmount), cents(t.CommissionGrossAmount), cents(t.NetAmount),
	}
	cell, err := excelize.CoordinatesToCellName(1, len(payouts)+2)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(exportSheet, cell, &totals); err != nil {
		return err
	}

	return f.Write(w)
}

func cents(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
