package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGetByTransactionID(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`FROM payments WHERE transaction_id = \$1`).
			WithArgs("TXN1234567ABC").
			WillReturnRows(sqlmock.NewRows([]string{"id", "rental_id", "amount", "payment_method", "transaction_id", "payment_date"}).
				AddRow(77, 55, "300.00", "Credit Card", "TXN1234567ABC", "2026-08-31"))

		repo := NewPaymentRepository(db)
		payment, err := repo.GetByTransactionID(ctx, "TXN1234567ABC")

		assert.NoError(t, err)
		assert.Equal(t, int32(55), payment.RentalID)
		assert.True(t, payment.Amount.Equal(decimal.RequireFromString("300.00")))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown id", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`FROM payments WHERE transaction_id = \$1`).
			WithArgs("TXNDEADBEEF00").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		repo := NewPaymentRepository(db)
		_, err = repo.GetByTransactionID(ctx, "TXNDEADBEEF00")

		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}
