package service

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/piyush898784/rentz/internal/domain"
	"github.com/piyush898784/rentz/internal/logger"
	"github.com/piyush898784/rentz/internal/repository"
	"github.com/piyush898784/rentz/internal/utils"
)

const (
	minRentalDays = 1
	maxRentalDays = 365
)

type rentalService struct {
	rentalRepo  repository.RentalRepository
	productRepo repository.ProductRepository
	paymentRepo repository.PaymentRepository
	userRepo    repository.UserRepository
	emailSvc    EmailService
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	productRepo repository.ProductRepository,
	paymentRepo repository.PaymentRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
) RentalService {
	return &rentalService{
		rentalRepo:  rentalRepo,
		productRepo: productRepo,
		paymentRepo: paymentRepo,
		userRepo:    userRepo,
		emailSvc:    emailSvc,
	}
}

// Rent books a product for the given date range. All checks and writes run
// against a single product row lock in the repository, so at most one active
// rental can exist per product at a time.
func (s *rentalService) Rent(ctx context.Context, renterID, productID int32, startDateStr string, days int32) (*domain.Rental, *domain.Payment, error) {
	if days < minRentalDays || days > maxRentalDays {
		return nil, nil, ErrInvalidInput
	}
	startDate, err := utils.ParseDate(startDateStr)
	if err != nil {
		return nil, nil, ErrInvalidInput
	}

	if startDate.Before(utils.Today()) {
		return nil, nil, ErrStartDateInPast
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	if product.Availability != domain.ProductAvailable {
		return nil, nil, ErrProductUnavailable
	}
	if product.OwnerID == renterID {
		return nil, nil, ErrOwnProductRental
	}

	endDate := utils.EndDate(startDate, days)
	totalCost := utils.TotalCost(product.PricePerDay, days)

	rental := &domain.Rental{
		RenterID:      renterID,
		ProductID:     product.ID,
		StartDate:     startDate.Format(utils.DateLayout),
		EndDate:       endDate.Format(utils.DateLayout),
		Days:          days,
		TotalCost:     totalCost,
		Status:        domain.RentalStatusActive,
		PaymentMethod: domain.DefaultPaymentMethod,
		PaymentStatus: domain.PaymentStatusCompleted,
	}
	payment := &domain.Payment{
		Amount:        totalCost,
		PaymentMethod: "Credit Card",
		TransactionID: newTransactionID(),
	}

	if err := s.rentalRepo.CreateBooking(ctx, rental, payment); err != nil {
		if errors.Is(err, repository.ErrProductUnavailable) {
			return nil, nil, ErrProductUnavailable
		}
		return nil, nil, err
	}
	rental.Product = product

	// Receipt mail is best effort; a delivery failure never fails the booking.
	if renter, err := s.userRepo.GetByID(ctx, renterID); err == nil {
		if err := s.emailSvc.SendRentalReceipt(ctx, renter.Email, renter.FirstName, product.Name, days, totalCost, payment.TransactionID); err != nil {
			logger.Warn("Failed to send rental receipt", "rental_id", rental.ID, "error", err)
		}
	}

	return rental, payment, nil
}

func (s *rentalService) RentalHistory(ctx context.Context, renterID int32) ([]domain.Rental, error) {
	return s.rentalRepo.ListByRenter(ctx, renterID, 0)
}

// Receipt looks up a payment by its transaction id. A receipt belonging to a
// different renter reads as not found rather than forbidden, so transaction
// ids cannot be probed.
func (s *rentalService) Receipt(ctx context.Context, renterID int32, transactionID string) (*domain.Rental, *domain.Payment, error) {
	payment, err := s.paymentRepo.GetByTransactionID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	rental, err := s.rentalRepo.GetByID(ctx, payment.RentalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	if rental.RenterID != renterID {
		return nil, nil, ErrNotFound
	}

	return rental, payment, nil
}

// newTransactionID generates a synthetic payment transaction id: a fixed
// prefix followed by 10 uppercase hex characters.
func newTransactionID() string {
	u := uuid.New()
	return "TXN" + strings.ToUpper(hex.EncodeToString(u[:])[:10])
}
