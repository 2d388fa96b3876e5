package repository

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/piyush898784/rentz/internal/domain"
)

// ErrProductUnavailable is returned by CreateBooking when the product is no
// longer available once its row is locked.
var ErrProductUnavailable = errors.New("product is not available")

type UserRepository interface {
	// CreateWithProfile inserts the user and its profile in one transaction
	// so a failure cannot leave a user without a profile.
	CreateWithProfile(ctx context.Context, user *domain.User, profile *domain.Profile) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetProfile(ctx context.Context, userID int32) (*domain.Profile, error)
}

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id int32) (*domain.Product, error)
	GetByIDForOwner(ctx context.Context, id, ownerID int32) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	// DeleteCascade removes the product together with its rentals and their
	// payments in one transaction.
	DeleteCascade(ctx context.Context, id int32) error
	ListByOwner(ctx context.Context, ownerID int32) ([]domain.Product, error)
	ListAvailable(ctx context.Context, limit int32) ([]domain.Product, error)
	SearchAvailable(ctx context.Context, category, query string) ([]domain.Product, error)
	CountAvailable(ctx context.Context) (int32, error)
	CountByAvailability(ctx context.Context, ownerID int32) (map[domain.ProductAvailability]int32, error)
}

type RentalRepository interface {
	// CreateBooking runs the whole booking sequence in a single transaction:
	// lock the product row, re-check availability, insert the rental and its
	// payment, and flip the product to rented. Returns ErrProductUnavailable
	// when the availability check fails under the lock.
	CreateBooking(ctx context.Context, rental *domain.Rental, payment *domain.Payment) error
	GetByID(ctx context.Context, id int32) (*domain.Rental, error)
	ListByRenter(ctx context.Context, renterID int32, limit int32) ([]domain.Rental, error)
	ListByOwner(ctx context.Context, ownerID int32, limit int32) ([]domain.Rental, error)
	CountActiveByProduct(ctx context.Context, productID int32) (int32, error)
	SumCompletedByRenter(ctx context.Context, renterID int32) (decimal.Decimal, error)
	SumCompletedByOwner(ctx context.Context, ownerID int32) (decimal.Decimal, error)
	// CompleteExpired marks active rentals past their end date as completed
	// and returns their products to available. Returns the number of rentals
	// completed.
	CompleteExpired(ctx context.Context, today string) (int32, error)
}

type PaymentRepository interface {
	GetByTransactionID(ctx context.Context, transactionID string) (*domain.Payment, error)
}
