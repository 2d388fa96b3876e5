package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/piyush898784/rentz/internal/domain"
	"github.com/piyush898784/rentz/internal/repository"
)

// featuredProductLimit is how many of the newest available products the
// public landing page shows.
const featuredProductLimit = 6

type productService struct {
	productRepo repository.ProductRepository
	rentalRepo  repository.RentalRepository
}

func NewProductService(productRepo repository.ProductRepository, rentalRepo repository.RentalRepository) ProductService {
	return &productService{
		productRepo: productRepo,
		rentalRepo:  rentalRepo,
	}
}

func (s *productService) AddProduct(ctx context.Context, ownerID int32, product *domain.Product) error {
	if !product.Category.Valid() {
		return ErrInvalidInput
	}
	if !product.PricePerDay.GreaterThan(decimal.Zero) {
		return ErrInvalidInput
	}

	product.OwnerID = ownerID
	if product.Availability == "" {
		product.Availability = domain.ProductAvailable
	}
	return s.productRepo.Create(ctx, product)
}

func (s *productService) DeleteProduct(ctx context.Context, ownerID, productID int32) error {
	// Owner-scoped fetch: a product belonging to someone else reads as
	// not found rather than forbidden.
	product, err := s.productRepo.GetByIDForOwner(ctx, productID, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	activeCount, err := s.rentalRepo.CountActiveByProduct(ctx, product.ID)
	if err != nil {
		return err
	}
	if activeCount > 0 {
		return ErrActiveRentalExists
	}

	return s.productRepo.DeleteCascade(ctx, product.ID)
}

func (s *productService) GetAvailableProduct(ctx context.Context, productID int32) (*domain.Product, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if product.Availability != domain.ProductAvailable {
		return nil, ErrNotFound
	}
	return product, nil
}

func (s *productService) HomePage(ctx context.Context) (*HomePage, error) {
	featured, err := s.productRepo.ListAvailable(ctx, featuredProductLimit)
	if err != nil {
		return nil, err
	}
	total, err := s.productRepo.CountAvailable(ctx)
	if err != nil {
		return nil, err
	}

	return &HomePage{
		FeaturedProducts: featured,
		TotalProducts:    total,
		Categories:       domain.ProductCategories,
	}, nil
}
