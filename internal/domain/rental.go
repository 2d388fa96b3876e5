package domain

import "github.com/shopspring/decimal"

type RentalStatus string

const (
	RentalStatusActive    RentalStatus = "active"
	RentalStatusCompleted RentalStatus = "completed"
	RentalStatusCancelled RentalStatus = "cancelled"
)

const (
	// PaymentStatusCompleted is the payment status stamped on a rental at
	// creation time. There is no real gateway; payment succeeds instantly.
	PaymentStatusCompleted = "Completed"

	DefaultPaymentMethod = "Online Payment"
)

type Rental struct {
	ID        int32  `json:"id"`
	RenterID  int32  `json:"renter_id"`
	ProductID int32  `json:"product_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Days      int32  `json:"days"`
	// Cost snapshot captured from the product at creation time. Later price
	// changes on the product never change an existing rental.
	TotalCost     decimal.Decimal `json:"total_cost"`
	Status        RentalStatus    `json:"status"`
	PaymentMethod string          `json:"payment_method"`
	PaymentStatus string          `json:"payment_status"`
	CreatedOn     string          `json:"created_on"`
	UpdatedOn     string          `json:"updated_on"`

	Product *Product `json:"product,omitempty"` // Populated for dashboard and history views
}
