package shop

import (
	reviewRepo "coffeemap/database/repository/review"
	shopRepo "coffeemap/database/repository/shop"
	"coffeemap/models"
	"coffeemap/services/geocode"
)

// ListQuery bundles everything one listing request needs: the filter
// and sort state parsed from the query string, the caller's location
// (nil when unknown) and their favorite shop ID set.
type ListQuery struct {
	Filter      models.FilterState
	Sort        models.SortState
	Location    *models.Coordinate
	FavoriteIDs map[int64]bool
}

// ListResult is the filtered, sorted shop list plus its statistics.
type ListResult struct {
	Shops []models.Shop    `json:"shops"`
	Stats models.ShopStats `json:"stats"`
}

// CreateShopRequest carries the fields accepted when creating or
// updating a shop. Latitude/Longitude may be omitted when an address is
// given; the service geocodes the address instead.
type CreateShopRequest struct {
	Name        string             `json:"name" binding:"required"`
	Address     string             `json:"address" binding:"required"`
	Description string             `json:"description"`
	Latitude    *float64           `json:"latitude"`
	Longitude   *float64           `json:"longitude"`
	Category    string             `json:"category" binding:"required"`
	PriceRange  int                `json:"price_range" binding:"required"`
	Phone       string             `json:"phone"`
	Website     string             `json:"website"`
	HasWifi     bool               `json:"has_wifi"`
	HasPower    bool               `json:"has_power"`
	Payments    []string           `json:"payment_methods"`
	Hours       []models.ShopHours `json:"hours"`
	Tags        []string           `json:"tags"`
}

// ShopService defines business logic for shop operations.
type ShopService interface {
	// ListShops runs the filter/sort/statistics pipeline over the full
	// shop list with review data aggregated on.
	ListShops(query ListQuery) (*ListResult, error)
	// GetShop retrieves one shop with its reviews and detailed reviews
	// aggregated on.
	GetShop(id int64, location *models.Coordinate, favoriteIDs map[int64]bool) (*models.Shop, error)
	// CreateShop validates the request, geocodes the address when no
	// coordinate was supplied, and persists the shop.
	CreateShop(req CreateShopRequest, creator *models.User) (*models.Shop, error)
	// UpdateShop applies the request to an existing shop. Only the
	// creator or a moderator may update.
	UpdateShop(id int64, req CreateShopRequest, caller *models.User) (*models.Shop, error)
	// DeleteShop removes a shop. Moderator or above only.
	DeleteShop(id int64, caller *models.User) error
}

// DefaultShopService is the production implementation.
type DefaultShopService struct {
	Repo     shopRepo.ShopRepository
	Reviews  reviewRepo.ReviewRepository
	Geocoder geocode.Geocoder // nil when geocoding is not configured
}
