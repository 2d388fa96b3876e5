package service_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/piyush898784/rentz/internal/domain"
	"github.com/piyush898784/rentz/internal/service"
)

func TestOwnerDashboard(t *testing.T) {
	ctx := context.Background()

	productRepo := new(MockProductRepo)
	rentalRepo := new(MockRentalRepo)
	svc := service.NewDashboardService(productRepo, rentalRepo)

	products := []domain.Product{{ID: 1, OwnerID: 1}, {ID: 2, OwnerID: 1}, {ID: 3, OwnerID: 1}}
	productRepo.On("ListByOwner", ctx, int32(1)).Return(products, nil)
	productRepo.On("CountByAvailability", ctx, int32(1)).Return(map[domain.ProductAvailability]int32{
		domain.ProductAvailable:   2,
		domain.ProductRented:      1,
		domain.ProductMaintenance: 0,
	}, nil)
	rentalRepo.On("SumCompletedByOwner", ctx, int32(1)).
		Return(decimal.RequireFromString("450.00"), nil)
	recent := []domain.Rental{{ID: 9}}
	rentalRepo.On("ListByOwner", ctx, int32(1), int32(5)).Return(recent, nil)

	dash, err := svc.OwnerDashboard(ctx, 1)

	assert.NoError(t, err)
	assert.Equal(t, int32(3), dash.TotalProducts)
	assert.Equal(t, int32(2), dash.AvailableProducts)
	assert.Equal(t, int32(1), dash.RentedProducts)
	assert.True(t, dash.TotalEarnings.Equal(decimal.RequireFromString("450.00")))
	assert.Equal(t, recent, dash.RecentRentals)
}

func TestRenterDashboard(t *testing.T) {
	ctx := context.Background()

	t.Run("Filters pass through to the search", func(t *testing.T) {
		productRepo := new(MockProductRepo)
		rentalRepo := new(MockRentalRepo)
		svc := service.NewDashboardService(productRepo, rentalRepo)

		products := []domain.Product{{ID: 4, Category: domain.CategoryTools}}
		productRepo.On("SearchAvailable", ctx, "tools", "drill").Return(products, nil)
		rentalRepo.On("ListByRenter", ctx, int32(2), int32(5)).Return([]domain.Rental{}, nil)
		rentalRepo.On("SumCompletedByRenter", ctx, int32(2)).
			Return(decimal.RequireFromString("120.00"), nil)

		dash, err := svc.RenterDashboard(ctx, 2, "tools", "drill")

		assert.NoError(t, err)
		assert.Equal(t, products, dash.Products)
		assert.Equal(t, "tools", dash.SelectedCategory)
		assert.Equal(t, "drill", dash.SearchQuery)
		assert.True(t, dash.TotalSpent.Equal(decimal.RequireFromString("120.00")))
		assert.Equal(t, domain.ProductCategories, dash.Categories)
	})

	t.Run("No filters shows the full catalog", func(t *testing.T) {
		productRepo := new(MockProductRepo)
		rentalRepo := new(MockRentalRepo)
		svc := service.NewDashboardService(productRepo, rentalRepo)

		productRepo.On("SearchAvailable", ctx, "", "").Return([]domain.Product{{ID: 1}, {ID: 2}}, nil)
		rentalRepo.On("ListByRenter", ctx, int32(2), int32(5)).Return([]domain.Rental{{ID: 3}}, nil)
		rentalRepo.On("SumCompletedByRenter", ctx, int32(2)).Return(decimal.Zero, nil)

		dash, err := svc.RenterDashboard(ctx, 2, "", "")

		assert.NoError(t, err)
		assert.Len(t, dash.Products, 2)
		assert.Empty(t, dash.SelectedCategory)
		assert.True(t, dash.TotalSpent.IsZero())
	})
}
