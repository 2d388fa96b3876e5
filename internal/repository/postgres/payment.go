package postgres

import (
	"context"
	"database/sql"

	"github.com/piyush898784/rentz/internal/domain"
	"github.com/piyush898784/rentz/internal/repository"
)

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) GetByTransactionID(ctx context.Context, transactionID string) (*domain.Payment, error) {
	p := &domain.Payment{}
	query := `SELECT id, rental_id, amount, payment_method, transaction_id, payment_date FROM payments WHERE transaction_id = $1`
	err := r.db.QueryRowContext(ctx, query, transactionID).Scan(&p.ID, &p.RentalID, &p.Amount, &p.PaymentMethod, &p.TransactionID, &p.PaymentDate)
	if err != nil {
		return nil, err
	}
	return p, nil
}
