package service

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/piyush898784/rentz/internal/domain"
)

// Business rule violations. Every failure is scoped to a single request; the
// HTTP layer maps these onto status codes.
var (
	ErrNotFound           = errors.New("not found")
	ErrPermissionDenied   = errors.New("access denied")
	ErrMissingProfile     = errors.New("profile not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrInvalidInput       = errors.New("invalid input")
	ErrProductUnavailable = errors.New("product is not available for rent")
	ErrOwnProductRental   = errors.New("you cannot rent your own product")
	ErrStartDateInPast    = errors.New("start date cannot be in the past")
	ErrActiveRentalExists = errors.New("cannot delete product with active rentals")
)

type AuthService interface {
	// Signup creates the user and its profile atomically and returns access
	// and refresh tokens so the caller is authenticated right away.
	Signup(ctx context.Context, username, email, firstName, lastName, password string, role domain.ProfileRole, phone string) (*domain.User, string, string, error)
	Login(ctx context.Context, username, password string) (string, string, domain.ProfileRole, error)
}

type ProductService interface {
	AddProduct(ctx context.Context, ownerID int32, product *domain.Product) error
	DeleteProduct(ctx context.Context, ownerID, productID int32) error
	// GetAvailableProduct returns the product only while it is available;
	// anything else reads as not found, matching the rent view's contract.
	GetAvailableProduct(ctx context.Context, productID int32) (*domain.Product, error)
	HomePage(ctx context.Context) (*HomePage, error)
}

type RentalService interface {
	Rent(ctx context.Context, renterID, productID int32, startDate string, days int32) (*domain.Rental, *domain.Payment, error)
	RentalHistory(ctx context.Context, renterID int32) ([]domain.Rental, error)
	// Receipt resolves a payment by the transaction id printed on the receipt
	// email, scoped to the renter who paid it.
	Receipt(ctx context.Context, renterID int32, transactionID string) (*domain.Rental, *domain.Payment, error)
}

type DashboardService interface {
	OwnerDashboard(ctx context.Context, ownerID int32) (*OwnerDashboard, error)
	RenterDashboard(ctx context.Context, renterID int32, category, search string) (*RenterDashboard, error)
}

type EmailService interface {
	SendRentalReceipt(ctx context.Context, email, name, productName string, days int32, total decimal.Decimal, transactionID string) error
}

// HomePage is the public landing view: the newest available products plus
// catalog summary numbers.
type HomePage struct {
	FeaturedProducts []domain.Product         `json:"featured_products"`
	TotalProducts    int32                    `json:"total_products"`
	Categories       []domain.ProductCategory `json:"categories"`
}

type OwnerDashboard struct {
	Products          []domain.Product `json:"products"`
	TotalProducts     int32            `json:"total_products"`
	AvailableProducts int32            `json:"available_products"`
	RentedProducts    int32            `json:"rented_products"`
	TotalEarnings     decimal.Decimal  `json:"total_earnings"`
	RecentRentals     []domain.Rental  `json:"recent_rentals"`
}

type RenterDashboard struct {
	Products         []domain.Product         `json:"products"`
	Categories       []domain.ProductCategory `json:"categories"`
	SelectedCategory string                   `json:"selected_category,omitempty"`
	SearchQuery      string                   `json:"search_query,omitempty"`
	UserRentals      []domain.Rental          `json:"user_rentals"`
	TotalSpent       decimal.Decimal          `json:"total_spent"`
}
