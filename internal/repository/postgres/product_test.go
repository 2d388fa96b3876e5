package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/piyush898784/rentz/internal/domain"
)

var productRowColumns = []string{
	"id", "owner_id", "name", "category", "description",
	"price_per_day", "availability", "image_url", "created_on", "updated_on",
}

func productRow(id int32, name string, category domain.ProductCategory) *sqlmock.Rows {
	return sqlmock.NewRows(productRowColumns).
		AddRow(id, 1, name, category, "", "25.50", "available", "", "2026-08-01", "2026-08-01")
}

func TestDeleteCascade(t *testing.T) {
	ctx := context.Background()

	t.Run("Removes payments and rentals before the product", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM payments WHERE rental_id IN`).
			WithArgs(int32(10)).WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(`DELETE FROM rentals WHERE product_id = \$1`).
			WithArgs(int32(10)).WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(`DELETE FROM products WHERE id = \$1`).
			WithArgs(int32(10)).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		repo := NewProductRepository(db)
		err = repo.DeleteCascade(ctx, 10)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Rolls back when a delete fails", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM payments WHERE rental_id IN`).
			WithArgs(int32(10)).WillReturnError(sql.ErrConnDone)
		mock.ExpectRollback()

		repo := NewProductRepository(db)
		err = repo.DeleteCascade(ctx, 10)

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSearchAvailable(t *testing.T) {
	ctx := context.Background()

	t.Run("No filters", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`FROM products WHERE availability = \$1 ORDER BY created_on DESC`).
			WithArgs(domain.ProductAvailable).
			WillReturnRows(productRow(1, "Cordless Drill", domain.CategoryTools))

		repo := NewProductRepository(db)
		products, err := repo.SearchAvailable(ctx, "", "")

		assert.NoError(t, err)
		assert.Len(t, products, 1)
		assert.Equal(t, "Cordless Drill", products[0].Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Category filter", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`AND category = \$2 ORDER BY created_on DESC`).
			WithArgs(domain.ProductAvailable, "tools").
			WillReturnRows(productRow(1, "Cordless Drill", domain.CategoryTools))

		repo := NewProductRepository(db)
		products, err := repo.SearchAvailable(ctx, "tools", "")

		assert.NoError(t, err)
		assert.Len(t, products, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Category and text search wraps the query in wildcards", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`AND category = \$2 AND \(name ILIKE \$3 OR description ILIKE \$3\)`).
			WithArgs(domain.ProductAvailable, "tools", "%drill%").
			WillReturnRows(sqlmock.NewRows(productRowColumns))

		repo := NewProductRepository(db)
		products, err := repo.SearchAvailable(ctx, "tools", "drill")

		assert.NoError(t, err)
		assert.Empty(t, products)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetByIDForOwner(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM products WHERE id = \$1 AND owner_id = \$2`).
		WithArgs(int32(10), int32(2)).
		WillReturnRows(sqlmock.NewRows(productRowColumns))

	repo := NewProductRepository(db)
	_, err = repo.GetByIDForOwner(ctx, 10, 2)

	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountByAvailability(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT availability, count\(\*\) FROM products WHERE owner_id = \$1 GROUP BY availability`).
		WithArgs(int32(1)).
		WillReturnRows(sqlmock.NewRows([]string{"availability", "count"}).
			AddRow("available", 2).
			AddRow("rented", 1))

	repo := NewProductRepository(db)
	counts, err := repo.CountByAvailability(ctx, 1)

	assert.NoError(t, err)
	assert.Equal(t, int32(2), counts[domain.ProductAvailable])
	assert.Equal(t, int32(1), counts[domain.ProductRented])
	assert.Equal(t, int32(0), counts[domain.ProductMaintenance])
	assert.NoError(t, mock.ExpectationsWereMet())
}
