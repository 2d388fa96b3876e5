package service

import (
	"context"

	"github.com/piyush898784/rentz/internal/domain"
	"github.com/piyush898784/rentz/internal/repository"
)

// recentRentalLimit caps the "recent rentals" list on both dashboards.
const recentRentalLimit = 5

type dashboardService struct {
	productRepo repository.ProductRepository
	rentalRepo  repository.RentalRepository
}

func NewDashboardService(productRepo repository.ProductRepository, rentalRepo repository.RentalRepository) DashboardService {
	return &dashboardService{
		productRepo: productRepo,
		rentalRepo:  rentalRepo,
	}
}

func (s *dashboardService) OwnerDashboard(ctx context.Context, ownerID int32) (*OwnerDashboard, error) {
	products, err := s.productRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	counts, err := s.productRepo.CountByAvailability(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	earnings, err := s.rentalRepo.SumCompletedByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	recent, err := s.rentalRepo.ListByOwner(ctx, ownerID, recentRentalLimit)
	if err != nil {
		return nil, err
	}

	return &OwnerDashboard{
		Products:          products,
		TotalProducts:     int32(len(products)),
		AvailableProducts: counts[domain.ProductAvailable],
		RentedProducts:    counts[domain.ProductRented],
		TotalEarnings:     earnings,
		RecentRentals:     recent,
	}, nil
}

func (s *dashboardService) RenterDashboard(ctx context.Context, renterID int32, category, search string) (*RenterDashboard, error) {
	products, err := s.productRepo.SearchAvailable(ctx, category, search)
	if err != nil {
		return nil, err
	}

	rentals, err := s.rentalRepo.ListByRenter(ctx, renterID, recentRentalLimit)
	if err != nil {
		return nil, err
	}

	spent, err := s.rentalRepo.SumCompletedByRenter(ctx, renterID)
	if err != nil {
		return nil, err
	}

	return &RenterDashboard{
		Products:         products,
		Categories:       domain.ProductCategories,
		SelectedCategory: category,
		SearchQuery:      search,
		UserRentals:      rentals,
		TotalSpent:       spent,
	}, nil
}
