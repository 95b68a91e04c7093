package shop

import (
	"fmt"
	"time"

	"coffeemap/models"
)

// ListShops fetches the full shop list, aggregates review data onto it,
// computes distances from the caller's location and runs the
// filter -> sort -> statistics pipeline.
func (s *DefaultShopService) ListShops(query ListQuery) (*ListResult, error) {
	shops, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load shop list: %w", err)
	}

	if err := s.attachReviews(shops); err != nil {
		return nil, err
	}
	AnnotateDistances(shops, query.Location)
	markFavorites(shops, query.FavoriteIDs)

	now := time.Now()
	filtered := FilterShops(shops, query.Filter, query.FavoriteIDs, now)
	sorted := SortShops(filtered, query.Sort)
	stats := ComputeStats(sorted, shops, query.FavoriteIDs, time.Now())

	return &ListResult{Shops: sorted, Stats: stats}, nil
}

// GetShop retrieves one shop with reviews aggregated on.
func (s *DefaultShopService) GetShop(id int64, location *models.Coordinate, favoriteIDs map[int64]bool) (*models.Shop, error) {
	shop, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	reviews, err := s.Reviews.ListByShop(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load reviews for shop %d: %w", id, err)
	}
	shop.Reviews = reviews

	if location != nil {
		d := Haversine(*location, models.Coordinate{
			Latitude:  shop.Latitude,
			Longitude: shop.Longitude,
		})
		shop.Distance = &d
	}
	shop.IsFavorite = favoriteIDs[shop.ID]
	return shop, nil
}

// attachReviews loads the basic reviews of every shop in one query and
// hangs them off the shop structs.
func (s *DefaultShopService) attachReviews(shops []models.Shop) error {
	ids := make([]int64, len(shops))
	for i := range shops {
		ids[i] = shops[i].ID
	}
	byShop, err := s.Reviews.ListByShops(ids)
	if err != nil {
		return fmt.Errorf("failed to load reviews: %w", err)
	}
	for i := range shops {
		shops[i].Reviews = byShop[shops[i].ID]
	}
	return nil
}

func markFavorites(shops []models.Shop, favoriteIDs map[int64]bool) {
	if len(favoriteIDs) == 0 {
		return
	}
	for i := range shops {
		shops[i].IsFavorite = favoriteIDs[shops[i].ID]
	}
}
