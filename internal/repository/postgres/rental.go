package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"github.com/piyush898784/rentz/internal/domain"
	"github.com/piyush898784/rentz/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

// CreateBooking performs the check-then-act booking sequence inside one
// transaction. The product row is locked first, so two concurrent bookings
// for the same product cannot both observe it as available.
func (r *rentalRepository) CreateBooking(ctx context.Context, rt *domain.Rental, pay *domain.Payment) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var availability domain.ProductAvailability
	lockQuery := `SELECT availability FROM products WHERE id = $1 FOR UPDATE`
	if err := tx.QueryRowContext(ctx, lockQuery, rt.ProductID).Scan(&availability); err != nil {
		return err
	}
	if availability != domain.ProductAvailable {
		return repository.ErrProductUnavailable
	}

	rentalQuery := `INSERT INTO rentals (renter_id, product_id, start_date, end_date, days, total_cost, status, payment_method, payment_status, created_on, updated_on)
	                VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	if err := tx.QueryRowContext(ctx, rentalQuery, rt.RenterID, rt.ProductID, rt.StartDate, rt.EndDate, rt.Days, rt.TotalCost, rt.Status, rt.PaymentMethod, rt.PaymentStatus, time.Now(), time.Now()).Scan(&rt.ID); err != nil {
		return err
	}

	pay.RentalID = rt.ID
	paymentQuery := `INSERT INTO payments (rental_id, amount, payment_method, transaction_id, payment_date)
	                 VALUES ($1, $2, $3, $4, $5) RETURNING id`
	if err := tx.QueryRowContext(ctx, paymentQuery, pay.RentalID, pay.Amount, pay.PaymentMethod, pay.TransactionID, time.Now()).Scan(&pay.ID); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, `UPDATE products SET availability = $1, updated_on = $2 WHERE id = $3 AND availability = $4`,
		domain.ProductRented, time.Now(), rt.ProductID, domain.ProductAvailable)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrProductUnavailable
	}

	return tx.Commit()
}

const rentalColumns = `r.id, r.renter_id, r.product_id, r.start_date, r.end_date, r.days, r.total_cost, r.status, r.payment_method, r.payment_status, r.created_on, r.updated_on, p.name, p.category`

func scanRental(row interface{ Scan(...interface{}) error }, rt *domain.Rental) error {
	product := &domain.Product{}
	err := row.Scan(&rt.ID, &rt.RenterID, &rt.ProductID, &rt.StartDate, &rt.EndDate, &rt.Days, &rt.TotalCost, &rt.Status, &rt.PaymentMethod, &rt.PaymentStatus, &rt.CreatedOn, &rt.UpdatedOn, &product.Name, &product.Category)
	if err != nil {
		return err
	}
	product.ID = rt.ProductID
	rt.Product = product
	return nil
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	rt := &domain.Rental{}
	query := `SELECT ` + rentalColumns + ` FROM rentals r JOIN products p ON p.id = r.product_id WHERE r.id = $1`
	if err := scanRental(r.db.QueryRowContext(ctx, query, id), rt); err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) ListByRenter(ctx context.Context, renterID int32, limit int32) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals r JOIN products p ON p.id = r.product_id
	          WHERE r.renter_id = $1 ORDER BY r.created_on DESC`
	args := []interface{}{renterID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		var rt domain.Rental
		if err := scanRental(rows, &rt); err != nil {
			return nil, err
		}
		rentals = append(rentals, rt)
	}
	return rentals, rows.Err()
}

func (r *rentalRepository) ListByOwner(ctx context.Context, ownerID int32, limit int32) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals r JOIN products p ON p.id = r.product_id
	          WHERE p.owner_id = $1 ORDER BY r.created_on DESC`
	args := []interface{}{ownerID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		var rt domain.Rental
		if err := scanRental(rows, &rt); err != nil {
			return nil, err
		}
		rentals = append(rentals, rt)
	}
	return rentals, rows.Err()
}

func (r *rentalRepository) CountActiveByProduct(ctx context.Context, productID int32) (int32, error) {
	var count int32
	query := `SELECT count(*) FROM rentals WHERE product_id = $1 AND status = $2`
	err := r.db.QueryRowContext(ctx, query, productID, domain.RentalStatusActive).Scan(&count)
	return count, err
}

func (r *rentalRepository) SumCompletedByRenter(ctx context.Context, renterID int32) (decimal.Decimal, error) {
	var total decimal.Decimal
	query := `SELECT COALESCE(SUM(total_cost), 0) FROM rentals WHERE renter_id = $1 AND payment_status = $2`
	err := r.db.QueryRowContext(ctx, query, renterID, domain.PaymentStatusCompleted).Scan(&total)
	return total, err
}

func (r *rentalRepository) SumCompletedByOwner(ctx context.Context, ownerID int32) (decimal.Decimal, error) {
	var total decimal.Decimal
	query := `SELECT COALESCE(SUM(r.total_cost), 0) FROM rentals r JOIN products p ON p.id = r.product_id
	          WHERE p.owner_id = $1 AND r.payment_status = $2`
	err := r.db.QueryRowContext(ctx, query, ownerID, domain.PaymentStatusCompleted).Scan(&total)
	return total, err
}

// CompleteExpired closes out active rentals whose end date has passed and
// frees their products. Products are only flipped back when no other active
// rental still references them.
func (r *rentalRepository) CompleteExpired(ctx context.Context, today string) (int32, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx, `UPDATE rentals SET status = $1, updated_on = $2 WHERE status = $3 AND end_date < $4 RETURNING product_id`,
		domain.RentalStatusCompleted, time.Now(), domain.RentalStatusActive, today)
	if err != nil {
		return 0, err
	}

	var productIDs []int32
	for rows.Next() {
		var productID int32
		if err := rows.Scan(&productID); err != nil {
			rows.Close()
			return 0, err
		}
		productIDs = append(productIDs, productID)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return 0, err
	}
	rows.Close()

	for _, productID := range productIDs {
		_, err := tx.ExecContext(ctx, `UPDATE products SET availability = $1, updated_on = $2
		                               WHERE id = $3 AND availability = $4
		                               AND NOT EXISTS (SELECT 1 FROM rentals WHERE product_id = $3 AND status = $5)`,
			domain.ProductAvailable, time.Now(), productID, domain.ProductRented, domain.RentalStatusActive)
		if err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return int32(len(productIDs)), nil
}
