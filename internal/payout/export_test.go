package payout

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	ref := "TRX-1"
	method := "transfer"
	paidAt := time.Date(2024, 3, 3, 10, 30, 0, 0, time.UTC)
	payouts := []Payout{
		{
			ID: 1, StoreName: "Tienda Sur", Status: StatusPaid,
			Amount: d("100000"), CommissionPercent: d("5"), CommissionMin: d("2000"), CommissionVATPercent: d("19"),
			ScheduledAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), PaidAt: &paidAt, Method: &method, Reference: &ref,
		},
		{
			ID: 2, StoreName: "Tienda Norte", Status: StatusPending,
			Amount: d("10000"), CommissionPercent: d("5"), CommissionMin: d("2000"), CommissionVATPercent: d("19"),
			ScheduledAt: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, payouts))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, "Store", rows[0][1])
	assert.Equal(t, "Tienda Sur", rows[1][1])
	assert.Equal(t, "94050", rows[1][11])
	assert.Equal(t, "TRX-1", rows[1][14])
	assert.Equal(t, "7620", rows[2][11])
	assert.Equal(t, "Total", rows[3][0])
	assert.Equal(t, "101670", rows[3][11])
}
