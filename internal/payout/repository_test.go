package payout

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var payoutColumns = []string{
	"id", "store_id", "name", "amount", "commission_percent", "commission_min",
	"commission_vat_percent", "status", "scheduled_at", "paid_at", "method", "reference",
}

func TestRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	scheduled := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	paidAt := scheduled.Add(48 * time.Hour)

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(payoutColumns).
			AddRow(2, 10, "Tienda Sur", "100000.00", "5", "2000", "19", "paid", scheduled, paidAt, "transfer", "TRX-1").
			AddRow(1, 11, "Tienda Norte", "10000.00", "5", "2000", "19", "pending", scheduled, nil, nil, nil)

		mock.ExpectQuery(`SELECT .* FROM payouts p INNER JOIN stores s ON s.id = p.store_id WHERE \(\$1 = '' OR p.status = \$1\)`).
			WithArgs("").
			WillReturnRows(rows)

		list, err := repo.List(context.Background(), "")
		require.NoError(t, err)
		require.Len(t, list, 2)

		assert.Equal(t, uint(2), list[0].ID)
		assert.Equal(t, "Tienda Sur", list[0].StoreName)
		assert.Equal(t, StatusPaid, list[0].Status)
		require.NotNil(t, list[0].Reference)
		assert.Equal(t, "TRX-1", *list[0].Reference)
		assert.True(t, list[0].Breakdown().NetAmount.Equal(d("94050")))

		assert.Equal(t, StatusPending, list[1].Status)
		assert.Nil(t, list[1].PaidAt)
		assert.Nil(t, list[1].Method)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM payouts`).
			WithArgs("pending").
			WillReturnError(errors.New("db down"))

		_, err := repo.List(context.Background(), StatusPending)
		assert.Error(t, err)
	})
}

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM payouts p .* WHERE p.id = \$1`).
			WithArgs(uint(5)).
			WillReturnRows(sqlmock.NewRows(payoutColumns).
				AddRow(5, 10, "Tienda Sur", "100000", "5", "2000", "19", "pending", time.Now(), nil, nil, nil))

		p, err := repo.GetByID(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, uint(5), p.ID)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM payouts p .* WHERE p.id = \$1`).
			WithArgs(uint(99)).
			WillReturnRows(sqlmock.NewRows(payoutColumns))

		_, err := repo.GetByID(context.Background(), 99)
		assert.ErrorIs(t, err, ErrPayoutNotFound)
	})
}

func TestRepository_MarkPaid(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	markPaid := `UPDATE payouts SET status = 'paid', method = \$2, reference = \$3, paid_at = NOW\(\) WHERE id = \$1 AND status = 'pending'`

	t.Run("Pending becomes paid", func(t *testing.T) {
		mock.ExpectExec(markPaid).
			WithArgs(uint(1), "transfer", "TRX-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.MarkPaid(ctx, 1, "transfer", "TRX-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Second call keeps first reference", func(t *testing.T) {
		mock.ExpectExec(markPaid).
			WithArgs(uint(1), "transfer", "TRX-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(markPaid).
			WithArgs(uint(1), "cash", "TRX-2").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT status FROM payouts WHERE id = \$1`).
			WithArgs(uint(1)).
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("paid"))

		require.NoError(t, repo.MarkPaid(ctx, 1, "transfer", "TRX-1"))
		err := repo.MarkPaid(ctx, 1, "cash", "TRX-2")

		assert.ErrorIs(t, err, ErrAlreadyPaid)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown payout", func(t *testing.T) {
		mock.ExpectExec(markPaid).
			WithArgs(uint(404), "cash", "X").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT status FROM payouts WHERE id = \$1`).
			WithArgs(uint(404)).
			WillReturnRows(sqlmock.NewRows([]string{"status"}))

		assert.ErrorIs(t, repo.MarkPaid(ctx, 404, "cash", "X"), ErrPayoutNotFound)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectExec(markPaid).
			WillReturnError(errors.New("db error"))

		err := repo.MarkPaid(ctx, 1, "cash", "X")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrAlreadyPaid)
	})
}
