package shop

import (
	"testing"

	"coffeemap/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReviewRepo struct {
	byShop map[int64][]models.Review
}

func (r *stubReviewRepo) Create(review *models.Review) error                 { return nil }
func (r *stubReviewRepo) CreateDetailed(review *models.DetailedReview) error { return nil }

func (r *stubReviewRepo) ListByShop(shopID int64) ([]models.Review, error) {
	return r.byShop[shopID], nil
}

func (r *stubReviewRepo) ListByShops(shopIDs []int64) (map[int64][]models.Review, error) {
	return r.byShop, nil
}

func (r *stubReviewRepo) ListDetailedByShop(shopID int64, includeUnapproved bool) ([]models.DetailedReview, error) {
	return nil, nil
}

func (r *stubReviewRepo) Approve(reviewID string) error { return nil }

func TestListShopsPipeline(t *testing.T) {
	repo := newMemShopRepo()
	repo.shops = map[int64]*models.Shop{
		1: {ID: 1, Name: "Bright Bean", Category: models.CategoryCafe, Latitude: 35.6580, Longitude: 139.7016},
		2: {ID: 2, Name: "Roast House", Category: models.CategoryRoastery, Latitude: 35.6812, Longitude: 139.7671},
		3: {ID: 3, Name: "Corner Drip", Category: models.CategoryCafe, Latitude: 35.7000, Longitude: 139.7700},
	}
	reviews := &stubReviewRepo{byShop: map[int64][]models.Review{
		1: {{Rating: 5}},
		3: {{Rating: 3}, {Rating: 4}},
	}}
	svc := &DefaultShopService{Repo: repo, Reviews: reviews}

	result, err := svc.ListShops(ListQuery{
		Filter:      models.FilterState{Category: models.CategoryCafe},
		Sort:        models.SortState{Key: models.SortDistance, Direction: models.SortAsc},
		Location:    &models.Coordinate{Latitude: 35.6580, Longitude: 139.7016},
		FavoriteIDs: map[int64]bool{1: true, 2: true},
	})
	require.NoError(t, err)

	require.Equal(t, []int64{1, 3}, shopIDs(result.Shops), "cafes only, nearest first")
	assert.True(t, result.Shops[0].IsFavorite)
	assert.False(t, result.Shops[1].IsFavorite)
	require.NotNil(t, result.Shops[0].Distance)
	assert.Len(t, result.Shops[0].Reviews, 1, "reviews are aggregated onto the listing")

	assert.Equal(t, 2, result.Stats.FilteredCount)
	assert.Equal(t, 3, result.Stats.TotalCount)
	assert.Equal(t, 1, result.Stats.FavoriteCount, "favorite counting is scoped to the filtered set")
}

func TestGetShopAnnotates(t *testing.T) {
	repo := newMemShopRepo()
	repo.shops = map[int64]*models.Shop{
		1: {ID: 1, Name: "Bright Bean", Latitude: 35.6580, Longitude: 139.7016},
	}
	reviews := &stubReviewRepo{byShop: map[int64][]models.Review{
		1: {{Rating: 5}, {Rating: 4}},
	}}
	svc := &DefaultShopService{Repo: repo, Reviews: reviews}

	shop, err := svc.GetShop(1, &models.Coordinate{Latitude: 35.6812, Longitude: 139.7671}, map[int64]bool{1: true})
	require.NoError(t, err)
	assert.Len(t, shop.Reviews, 2)
	assert.True(t, shop.IsFavorite)
	require.NotNil(t, shop.Distance)
	assert.InDelta(t, 6.4, *shop.Distance, 0.2)

	_, err = svc.GetShop(99, nil, nil)
	assert.Error(t, err)
}
