package domain

import "github.com/shopspring/decimal"

type ProductAvailability string

const (
	ProductAvailable   ProductAvailability = "available"
	ProductRented      ProductAvailability = "rented"
	ProductMaintenance ProductAvailability = "maintenance"
)

type ProductCategory string

const (
	CategoryVehicle     ProductCategory = "vehicle"
	CategoryFurniture   ProductCategory = "furniture"
	CategoryElectronics ProductCategory = "electronics"
	CategoryGadgets     ProductCategory = "gadgets"
	CategorySports      ProductCategory = "sports"
	CategoryBooks       ProductCategory = "books"
	CategoryClothing    ProductCategory = "clothing"
	CategoryTools       ProductCategory = "tools"
	CategoryOthers      ProductCategory = "others"
)

// ProductCategories lists every valid category, in display order.
var ProductCategories = []ProductCategory{
	CategoryVehicle,
	CategoryFurniture,
	CategoryElectronics,
	CategoryGadgets,
	CategorySports,
	CategoryBooks,
	CategoryClothing,
	CategoryTools,
	CategoryOthers,
}

func (c ProductCategory) Valid() bool {
	for _, known := range ProductCategories {
		if c == known {
			return true
		}
	}
	return false
}

type Product struct {
	ID           int32               `json:"id"`
	OwnerID      int32               `json:"owner_id"`
	Owner        *User               `json:"owner,omitempty"` // Populated when fetching product details
	Name         string              `json:"name"`
	Category     ProductCategory     `json:"category"`
	Description  string              `json:"description"`
	PricePerDay  decimal.Decimal     `json:"price_per_day"`
	Availability ProductAvailability `json:"availability"`
	ImageURL     string              `json:"image_url,omitempty"`
	CreatedOn    string              `json:"created_on"`
	UpdatedOn    string              `json:"updated_on"`
}
