package domain

import "github.com/shopspring/decimal"

// Payment is the one-to-one receipt for a rental. Its amount always equals
// the rental's total cost at creation time.
type Payment struct {
	ID            int32           `json:"id"`
	RentalID      int32           `json:"rental_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	TransactionID string          `json:"transaction_id"`
	PaymentDate   string          `json:"payment_date"`
}
